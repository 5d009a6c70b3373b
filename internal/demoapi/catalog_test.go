package demoapi

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	products := DefaultCatalog()
	if len(products) == 0 {
		t.Fatalf("embedded catalog is empty")
	}
	if products[0].ID != 1 || products[0].Rating == nil {
		t.Fatalf("first product = %#v, want id 1 with rating", products[0])
	}
}

func TestParseCatalogValidation(t *testing.T) {
	cases := []struct {
		name   string
		yaml   string
		substr string
	}{
		{"duplicate", "products:\n  - {id: 1, title: a}\n  - {id: 1, title: b}\n", "duplicate id"},
		{"non-positive", "products:\n  - {id: 0, title: a}\n", "must be positive"},
		{"missing title", "products:\n  - {id: 2}\n", "title is required"},
		{"malformed", "products: [", "parse catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.substr) {
				t.Fatalf("ParseCatalog error = %v, want %q", err, tc.substr)
			}
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("products:\n  - {id: 9, title: Lamp, price: 12.5}\n  - {id: 4, title: Desk, price: 80}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	products, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(products) != 2 || products[0].ID != 9 || products[1].Price != 80 {
		t.Fatalf("products = %#v, want Lamp then Desk", products)
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadCatalog(missing) returned nil error")
	}
}
