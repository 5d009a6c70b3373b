package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiosk.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	path := writeLog(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (3)", 3, all[7:]},
		{"read exactly all (10)", 10, all},
		{"read more than exists (20)", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read(%d) = %v, want %v", tt.maxLines, got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		line   string
		ok     bool
		path   string
		id     string
		status int
		detail string
	}{
		{
			line:   "kiosk 2026/10/16 09:12:44 fetch /products request=abc status=200 bytes=1432 elapsed=212ms",
			ok:     true,
			path:   "/products",
			id:     "abc",
			status: 200,
			detail: "bytes=1432 elapsed=212ms",
		},
		{
			line:   "kiosk 2026/10/16 09:12:45 fetch /products/99 request=def status=404",
			ok:     true,
			path:   "/products/99",
			id:     "def",
			status: 404,
		},
		{
			line:   "kiosk 2026/10/16 09:12:46 fetch /products/1 request=ghi failed after 3ms: connection refused",
			ok:     true,
			path:   "/products/1",
			id:     "ghi",
			detail: "failed after 3ms: connection refused",
		},
		{line: "kiosk 2026/10/16 09:12:40 ui: mount /", ok: false},
		{line: "fetch /products without id", ok: false},
	}
	for _, tt := range tests {
		req, ok := ParseRequest(tt.line)
		if ok != tt.ok {
			t.Errorf("ParseRequest(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if req.Path != tt.path || req.RequestID != tt.id || req.Status != tt.status || req.Detail != tt.detail {
			t.Errorf("ParseRequest(%q) = %+v", tt.line, req)
		}
		if req.Time.IsZero() {
			t.Errorf("ParseRequest(%q) did not parse the timestamp", tt.line)
		}
	}
}

func TestRequestsKeepsLatest(t *testing.T) {
	path := writeLog(t, []string{
		"kiosk 2026/10/16 09:00:00 kiosk starting: api=https://fakestoreapi.com path=/",
		"kiosk 2026/10/16 09:00:01 fetch /products request=a status=200 bytes=10 elapsed=5ms",
		"kiosk 2026/10/16 09:00:02 ui: mount /product/1",
		"kiosk 2026/10/16 09:00:03 fetch /products/1 request=b status=200 bytes=5 elapsed=4ms",
		"kiosk 2026/10/16 09:00:04 fetch /products/2 request=c status=500",
	})

	reqs, err := Requests(path, 2)
	if err != nil {
		t.Fatalf("Requests: %v", err)
	}
	if len(reqs) != 2 || reqs[0].RequestID != "b" || reqs[1].RequestID != "c" {
		t.Fatalf("Requests = %+v, want b then c", reqs)
	}
	if reqs[0].Failed() || !reqs[1].Failed() {
		t.Fatalf("Failed() = %v, %v; want false, true", reqs[0].Failed(), reqs[1].Failed())
	}
}

func TestRequestsHoldsOnlyTheNewest(t *testing.T) {
	var lines []string
	for i := 1; i <= 1200; i++ {
		lines = append(lines,
			fmt.Sprintf("kiosk 2026/10/16 09:00:00 fetch /products/%d request=r%d status=200 bytes=1 elapsed=1ms", i, i),
			"kiosk 2026/10/16 09:00:00 ui: mount /")
	}
	path := writeLog(t, lines)

	tests := []struct {
		name      string
		max       int
		wantCount int
		wantFirst string
	}{
		{"explicit limit", 3, 3, "r1198"},
		{"default limit", 0, maxRequests, fmt.Sprintf("r%d", 1200-maxRequests+1)},
		{"limit above total", 5000, 1200, "r1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs, err := Requests(path, tt.max)
			if err != nil {
				t.Fatalf("Requests: %v", err)
			}
			if len(reqs) != tt.wantCount {
				t.Fatalf("Requests returned %d, want %d", len(reqs), tt.wantCount)
			}
			if reqs[0].RequestID != tt.wantFirst || reqs[len(reqs)-1].RequestID != "r1200" {
				t.Fatalf("Requests window = %s..%s, want %s..r1200",
					reqs[0].RequestID, reqs[len(reqs)-1].RequestID, tt.wantFirst)
			}
		})
	}
}

func TestRequestsMissingFile(t *testing.T) {
	reqs, err := Requests(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || reqs != nil {
		t.Fatalf("Requests(missing) = %v, %v; want nil, nil", reqs, err)
	}
}
