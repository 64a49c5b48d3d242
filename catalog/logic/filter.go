package logic

import "strings"

// Filter returns the products that satisfy every predicate of c, in input
// order. It never returns nil.
func Filter(products []Product, c Criteria) []Product {
	search := strings.ToLower(c.SearchText)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.matches(p, search) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single product passes all predicates.
func (c Criteria) Matches(p Product) bool {
	return c.matches(p, strings.ToLower(c.SearchText))
}

func (c Criteria) matches(p Product, search string) bool {
	return c.matchCategory(p) &&
		matchSearch(p, search) &&
		c.PriceRange.Contains(p.PriceCents) &&
		c.matchRating(p) &&
		(!c.InStockOnly || p.InStock)
}

func (c Criteria) matchCategory(p Product) bool {
	return c.Category.IsAll() || p.Category == c.Category.Name()
}

func matchSearch(p Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Seller), search)
}

// matchRating passes when no threshold is selected or the rating meets any one.
func (c Criteria) matchRating(p Product) bool {
	if len(c.MinRatings) == 0 {
		return true
	}
	for _, r := range c.MinRatings {
		if p.Rating >= r {
			return true
		}
	}
	return false
}

// SearchInventory is the seller product search: case-insensitive substring
// of name or category.
func SearchInventory(products []Product, text string) []Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
