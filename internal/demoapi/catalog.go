package demoapi

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Product is the wire shape served by the demo API.
type Product struct {
	ID          int     `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Price       float64 `yaml:"price" json:"price"`
	Description string  `yaml:"description" json:"description"`
	Category    string  `yaml:"category" json:"category"`
	Image       string  `yaml:"image" json:"image"`
	Rating      *Rating `yaml:"rating,omitempty" json:"rating,omitempty"`
}

// Rating mirrors the fakestoreapi review summary.
type Rating struct {
	Rate  float64 `yaml:"rate" json:"rate"`
	Count int     `yaml:"count" json:"count"`
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// DefaultCatalog returns the embedded product list.
func DefaultCatalog() []Product {
	products, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return products
}

// LoadCatalog reads a YAML catalog from path; an empty path returns the embedded one.
func LoadCatalog(path string) ([]Product, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog. Identifiers must be positive and unique;
// order is preserved.
func ParseCatalog(data []byte) ([]Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[int]struct{}, len(file.Products))
	for i, p := range file.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %d: id must be positive, got %d", i, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %d", i, p.ID)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("product %d: title is required", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return file.Products, nil
}
