package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines. maxLines <= 0 returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > 2*maxLines {
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// Request is one catalog request recorded in the log.
type Request struct {
	Time      time.Time
	Path      string
	RequestID string
	Status    int // zero when the request failed before a response
	Detail    string
	Raw       string
}

// Failed reports whether the request did not produce a 2xx response.
func (r Request) Failed() bool {
	return r.Status < 200 || r.Status > 299
}

// maxRequests bounds Requests when the caller passes no limit.
const maxRequests = 500

// Requests returns the last max catalog requests found in the log at path,
// oldest first. Only the newest max records are held while scanning, so an
// ever-growing log does not grow memory with it.
func Requests(path string, max int) ([]Request, error) {
	if max <= 0 {
		max = maxRequests
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]Request, max)
	count, next := 0, 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		req, ok := ParseRequest(scanner.Text())
		if !ok {
			continue
		}
		ring[next] = req
		next = (next + 1) % max
		if count < max {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	out := make([]Request, count)
	if count < max {
		copy(out, ring[:count])
		return out, nil
	}
	for i := range out {
		out[i] = ring[(next+i)%max]
	}
	return out, nil
}

const logTimeLayout = "2006/01/02 15:04:05"

// ParseRequest extracts a request record from a line written by the catalog
// client, e.g.
//
//	kiosk 2026/10/16 09:12:44 fetch /products request=3f2c… status=200 bytes=1432 elapsed=212ms
func ParseRequest(line string) (Request, bool) {
	idx := strings.Index(line, "fetch /")
	if idx < 0 {
		return Request{}, false
	}
	fields := strings.Fields(line[idx+len("fetch "):])
	if len(fields) < 2 || !strings.HasPrefix(fields[1], "request=") {
		return Request{}, false
	}

	req := Request{
		Path:      fields[0],
		RequestID: strings.TrimPrefix(fields[1], "request="),
		Raw:       line,
	}
	rest := fields[2:]
	if len(rest) > 0 && strings.HasPrefix(rest[0], "status=") {
		req.Status, _ = strconv.Atoi(strings.TrimPrefix(rest[0], "status="))
		rest = rest[1:]
	}
	req.Detail = strings.Join(rest, " ")
	req.Time = parseTimestamp(line[:idx])
	return req, true
}

// parseTimestamp finds a log.LstdFlags timestamp at the end of prefix.
func parseTimestamp(prefix string) time.Time {
	prefix = strings.TrimSpace(prefix)
	if len(prefix) < len(logTimeLayout) {
		return time.Time{}
	}
	ts, err := time.ParseInLocation(logTimeLayout, prefix[len(prefix)-len(logTimeLayout):], time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}
