package logic

import "math"

// PriceRange is an inclusive price window in cents.
type PriceRange struct {
	MinCents int64 `json:"min_cents"`
	MaxCents int64 `json:"max_cents"`
}

// Unbounded is the range {0, +inf}.
func Unbounded() PriceRange {
	return PriceRange{MinCents: 0, MaxCents: math.MaxInt64}
}

// Contains reports whether price lies within the range, bounds included.
// A range with Min > Max contains nothing.
func (r PriceRange) Contains(priceCents int64) bool {
	return priceCents >= r.MinCents && priceCents <= r.MaxCents
}

// Criteria is the set of filter predicates chosen on the listing screen.
type Criteria struct {
	Category    Category
	SearchText  string
	PriceRange  PriceRange
	MinRatings  []float64
	InStockOnly bool
}

// DefaultCriteria selects every product.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:   AllCategories(),
		PriceRange: Unbounded(),
	}
}

// Refined reports whether any refinement beyond category and search is set:
// a rating chip, the in-stock toggle, or a price window narrower than
// {0, defaultMaxCents}.
func (c Criteria) Refined(defaultMaxCents int64) bool {
	return len(c.MinRatings) > 0 ||
		c.InStockOnly ||
		c.PriceRange.MinCents > 0 ||
		c.PriceRange.MaxCents < defaultMaxCents
}
