// Package logic implements the catalog filter engine: product and criteria
// types, the five-predicate filter, facet metadata and boundary parsing.
package logic

import "strings"

// Product is a catalog entry. Read-only to the filter engine.
type Product struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	// PriceCents is the current unit price.
	PriceCents int64 `json:"price_cents" yaml:"price_cents"`
	// OriginalPriceCents is the list price before markdown; zero means no markdown.
	OriginalPriceCents int64   `json:"original_price_cents,omitempty" yaml:"original_price_cents"`
	Rating             float64 `json:"rating" yaml:"rating"`
	Reviews            int     `json:"reviews" yaml:"reviews"`
	InStock            bool    `json:"in_stock" yaml:"in_stock"`
	Stock              int     `json:"stock" yaml:"stock"`
	Seller             string  `json:"seller" yaml:"seller"`
}

// ListPriceCents returns the pre-markdown price, never below the current price.
func (p Product) ListPriceCents() int64 {
	if p.OriginalPriceCents > p.PriceCents {
		return p.OriginalPriceCents
	}
	return p.PriceCents
}

// Known category labels shown on the storefront.
const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHomeGarden  = "Home & Garden"
	CategorySports      = "Sports"
	CategoryBooks       = "Books"
	CategoryAccessories = "Accessories"
)

const allLabel = "All"

// Category is either All or a single named category. The zero value is All.
type Category struct {
	name string
}

// AllCategories matches every product.
func AllCategories() Category {
	return Category{}
}

// Named matches products whose category label equals name exactly.
func Named(name string) Category {
	return Category{name: name}
}

// ParseCategory maps "All" (any case) or blank input to AllCategories,
// anything else to Named.
func ParseCategory(label string) Category {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, allLabel) {
		return AllCategories()
	}
	return Named(label)
}

// IsAll reports whether c is the All variant.
func (c Category) IsAll() bool {
	return c.name == ""
}

// Name returns the category label, or "" for All.
func (c Category) Name() string {
	return c.name
}

func (c Category) String() string {
	if c.IsAll() {
		return allLabel
	}
	return c.name
}

// Labels returns the storefront category tabs in display order.
func Labels() []string {
	return []string{allLabel, CategoryElectronics, CategoryFashion, CategoryHomeGarden, CategorySports, CategoryBooks}
}

// Lookup finds a product by id.
func Lookup(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
