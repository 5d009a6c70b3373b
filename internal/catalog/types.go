package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ListItem mirrors one element of the GET /products array.
type ListItem struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// DetailEntity mirrors GET /products/{id}. It shares the ListItem identifier space.
type DetailEntity struct {
	ListItem
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Rating      *Rating `json:"rating,omitempty"`
}

// Rating is the optional review summary attached to demo catalog products.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// PriceLabel formats the price with two decimal places.
func (i ListItem) PriceLabel() string {
	return "$" + i.Price.StringFixed(2)
}

// CategoryLabel returns the category in title case, or "Uncategorized".
func (d DetailEntity) CategoryLabel() string {
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return "Uncategorized"
	}
	words := strings.Fields(category)
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// IDs returns the identifiers of items in response order.
func IDs(items []ListItem) []int {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
