package logic

import (
	"github.com/montanaflynn/stats"
)

// CategoryCount is the number of products carrying a category label.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// FacetSummary is the filter panel metadata for a product collection.
type FacetSummary struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
	InStock    int             `json:"in_stock"`
	OutOfStock int             `json:"out_of_stock"`
	PriceRange PriceRange      `json:"price_range"`
	MeanRating float64         `json:"mean_rating"`
}

// Facets summarises products for the filter panel. Category counts follow
// the storefront tab order, then any other labels in first-seen order.
func Facets(products []Product) FacetSummary {
	summary := FacetSummary{Total: len(products)}
	if len(products) == 0 {
		summary.Categories = []CategoryCount{}
		return summary
	}

	counts := make(map[string]int)
	var seen []string
	prices := make(stats.Float64Data, 0, len(products))
	ratings := make(stats.Float64Data, 0, len(products))
	for _, p := range products {
		if _, ok := counts[p.Category]; !ok {
			seen = append(seen, p.Category)
		}
		counts[p.Category]++
		if p.InStock {
			summary.InStock++
		} else {
			summary.OutOfStock++
		}
		prices = append(prices, float64(p.PriceCents))
		ratings = append(ratings, p.Rating)
	}

	summary.Categories = orderedCounts(counts, seen)

	// Errors only occur on empty input, excluded above.
	minPrice, _ := prices.Min()
	maxPrice, _ := prices.Max()
	summary.PriceRange = PriceRange{MinCents: int64(minPrice), MaxCents: int64(maxPrice)}

	mean, _ := ratings.Mean()
	rounded, _ := stats.Round(mean, 2)
	summary.MeanRating = rounded
	return summary
}

func orderedCounts(counts map[string]int, seen []string) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	placed := make(map[string]bool, len(counts))
	for _, label := range Labels()[1:] {
		if n, ok := counts[label]; ok {
			out = append(out, CategoryCount{Category: label, Count: n})
			placed[label] = true
		}
	}
	for _, label := range seen {
		if !placed[label] {
			out = append(out, CategoryCount{Category: label, Count: counts[label]})
		}
	}
	return out
}
