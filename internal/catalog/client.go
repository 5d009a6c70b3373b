package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher retrieves catalog data. *Client implements it; views depend on the interface.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]ListItem, error)
	FetchProduct(ctx context.Context, id int) (DetailEntity, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// DefaultBaseURL is the public demo catalog used when no base URL is configured.
const DefaultBaseURL = "https://fakestoreapi.com"

const (
	defaultUserAgent = "kiosk/0.1"
	productsPath     = "/products"
	maxBodyBytes     = 8 << 20
)

// Options configure a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a whole request. Zero leaves the transport defaults in charge.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to a fakestoreapi-compatible catalog.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{baseURL: base, http: httpClient, userAgent: userAgent}, nil
}

// BaseURL returns the normalized catalog root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchProducts retrieves the product collection in response order.
func (c *Client) FetchProducts(ctx context.Context) ([]ListItem, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.Fetch(ctx, productsPath)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, decodeError(productsPath, fmt.Errorf("expected a JSON array"))
	}
	var items []ListItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, decodeError(productsPath, err)
	}
	if err := checkIDs(items); err != nil {
		return nil, decodeError(productsPath, err)
	}
	return items, nil
}

// checkIDs requires every item to carry a positive id that is unique within
// the response. Null elements decode to a zero id and fail here too.
func checkIDs(items []ListItem) error {
	seen := make(map[int]struct{}, len(items))
	for i, item := range items {
		if item.ID <= 0 {
			return fmt.Errorf("item %d: invalid id %d", i, item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("item %d: duplicate id %d", i, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// FetchProduct retrieves a single product by identifier.
func (c *Client) FetchProduct(ctx context.Context, id int) (DetailEntity, error) {
	if c == nil {
		return DetailEntity{}, fmt.Errorf("client is nil")
	}
	path := productPath(id)
	body, err := c.Fetch(ctx, path)
	if err != nil {
		return DetailEntity{}, err
	}
	trimmed := bytes.TrimSpace(body)
	// fakestoreapi answers unknown ids with 200 and an empty body.
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DetailEntity{}, &Error{
			Kind:    KindProtocol,
			Path:    path,
			Status:  http.StatusNotFound,
			Message: fmt.Sprintf("product %d not found", id),
		}
	}
	var product DetailEntity
	if err := json.Unmarshal(trimmed, &product); err != nil {
		return DetailEntity{}, decodeError(path, err)
	}
	if product.ID != id {
		return DetailEntity{}, decodeError(path, fmt.Errorf("response id %d does not match requested id %d", product.ID, id))
	}
	return product, nil
}

// Fetch issues one GET for path relative to the base URL and returns the raw body.
// Non-2xx statuses and transport failures come back as *Error; nothing is retried.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("fetch %s request=%s failed after %s: %v", path, requestID, time.Since(started).Round(time.Millisecond), err)
		return nil, networkError(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Printf("fetch %s request=%s status=%d", path, requestID, resp.StatusCode)
		return nil, statusError(path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("fetch %s request=%s read body: %v", path, requestID, err)
		return nil, networkError(path, err)
	}
	log.Printf("fetch %s request=%s status=%d bytes=%d elapsed=%s", path, requestID, resp.StatusCode, len(body), time.Since(started).Round(time.Millisecond))
	return body, nil
}

func productPath(id int) string {
	return productsPath + "/" + strconv.Itoa(id)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
