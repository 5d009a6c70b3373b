package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("default base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("127.0.0.1:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "127.0.0.1:8080" {
		t.Fatalf("scheme-less base = %q, want http://127.0.0.1:8080", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/api" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchProductsPreservesOrderAndHeaders(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotRequestID, gotAccept, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":3,"title":"Jacket","price":55.99,"image":"u3"},
			{"id":1,"title":"Laptop","price":999,"image":"u1"},
			{"id":2,"title":"Shirt","price":22.3,"image":"u2"}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	wantIDs := []int{3, 1, 2}
	if len(items) != len(wantIDs) {
		t.Fatalf("FetchProducts returned %d items, want %d", len(items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Fatalf("items[%d].ID = %d, want %d (response order)", i, items[i].ID, id)
		}
	}
	if !items[1].Price.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("items[1].Price = %s, want 999", items[1].Price)
	}
	if gotPath != "/products" {
		t.Fatalf("path = %q, want /products", gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "kiosk/") {
		t.Fatalf("User-Agent = %q, want kiosk/*", gotUserAgent)
	}
	if _, err := uuid.Parse(gotRequestID); err != nil {
		t.Fatalf("X-Request-ID = %q, want a uuid: %v", gotRequestID, err)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchProductDecodesDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/1" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"title":"Laptop","price":999,"description":"d","category":"c","image":"u1","rating":{"rate":4.1,"count":259}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/api"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	product, err := c.FetchProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if product.ID != 1 || product.Title != "Laptop" || product.Description != "d" || product.Category != "c" || product.Image != "u1" {
		t.Fatalf("FetchProduct = %#v, want Laptop detail", product)
	}
	if product.Rating == nil || product.Rating.Count != 259 {
		t.Fatalf("Rating = %#v, want count 259", product.Rating)
	}
}

func TestClient_FailureClassification(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/products/404":
			http.NotFound(w, r)
		case "/products/5":
			_, _ = w.Write([]byte("{not-json"))
		case "/products/6":
			// fakestoreapi behaviour for unknown ids
			w.WriteHeader(http.StatusOK)
		case "/products/7":
			_, _ = w.Write([]byte(`{"id":8,"title":"Other"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchProducts(ctx)
	if KindOf(err) != KindProtocol || StatusOf(err) != http.StatusInternalServerError {
		t.Fatalf("FetchProducts error = %v (kind %v), want protocol 500", err, KindOf(err))
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchProducts error = %q, want status message", err)
	}

	cases := []struct {
		name   string
		id     int
		status int
		substr string
	}{
		{"not found status", 404, http.StatusNotFound, "returned status 404"},
		{"malformed body", 5, 0, "decode response"},
		{"empty body", 6, http.StatusNotFound, "product 6 not found"},
		{"mismatched id", 7, 0, "does not match requested id 7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.FetchProduct(ctx, tc.id)
			if KindOf(err) != KindProtocol {
				t.Fatalf("FetchProduct(%d) kind = %v, want protocol (err %v)", tc.id, KindOf(err), err)
			}
			if StatusOf(err) != tc.status {
				t.Fatalf("FetchProduct(%d) status = %d, want %d", tc.id, StatusOf(err), tc.status)
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Fatalf("FetchProduct(%d) error = %q, want %q", tc.id, err, tc.substr)
			}
		})
	}
}

func TestClient_MalformedListIsProtocolError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchProducts(context.Background()); KindOf(err) != KindProtocol {
		t.Fatalf("FetchProducts error = %v, want protocol failure", err)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	c, err := NewClient(Options{BaseURL: base})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchProducts(context.Background())
	if KindOf(err) != KindNetwork {
		t.Fatalf("FetchProducts error = %v (kind %v), want network", err, KindOf(err))
	}
	var ce *Error
	if !errors.As(err, &ce) || ce.Unwrap() == nil {
		t.Fatalf("network error should wrap the transport error, got %#v", err)
	}
	if StatusOf(err) != 0 {
		t.Fatalf("StatusOf(network) = %d, want 0", StatusOf(err))
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchProducts(context.Background()); err == nil {
		t.Fatalf("FetchProducts on nil client returned nil error")
	}
	if _, err := c.FetchProduct(context.Background(), 1); err == nil {
		t.Fatalf("FetchProduct on nil client returned nil error")
	}
}

func TestClient_ListIdentifiersMustBeValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"null element", `[{"id":1,"title":"a","price":1},null]`, "invalid id 0"},
		{"missing id", `[{"id":1,"title":"a","price":1},{"title":"noid","price":2}]`, "invalid id 0"},
		{"negative id", `[{"id":-4,"title":"a","price":1}]`, "invalid id -4"},
		{"duplicate id", `[{"id":1,"title":"a","price":1},{"id":2,"title":"b","price":1},{"id":1,"title":"c","price":1}]`, "duplicate id 1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(Options{BaseURL: server.URL})
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			items, err := c.FetchProducts(context.Background())
			if KindOf(err) != KindProtocol {
				t.Fatalf("FetchProducts error = %v, want protocol failure", err)
			}
			if items != nil {
				t.Fatalf("FetchProducts returned %d items alongside an error", len(items))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("FetchProducts error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}
