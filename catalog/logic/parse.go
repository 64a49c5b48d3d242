package logic

import (
	"math"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"storefront/commerce"
)

// Query parameter names accepted by ParseCriteria.
const (
	ParamCategory = "category"
	ParamSearch   = "q"
	ParamMinPrice = "min"
	ParamMaxPrice = "max"
	ParamRating   = "rating"
	ParamInStock  = "in_stock"
)

// ParseCriteria coerces query-style input into Criteria. Prices are in
// currency units ("49.99"). Missing keys keep DefaultCriteria values.
//
// min > max is passed through unchanged.
func ParseCriteria(values url.Values) (Criteria, error) {
	c := DefaultCriteria()
	c.Category = ParseCategory(values.Get(ParamCategory))
	c.SearchText = strings.TrimSpace(values.Get(ParamSearch))

	if raw := strings.TrimSpace(values.Get(ParamMinPrice)); raw != "" {
		cents, err := parsePrice(ParamMinPrice, raw)
		if err != nil {
			return Criteria{}, err
		}
		c.PriceRange.MinCents = cents
	}
	if raw := strings.TrimSpace(values.Get(ParamMaxPrice)); raw != "" {
		cents, err := parsePrice(ParamMaxPrice, raw)
		if err != nil {
			return Criteria{}, err
		}
		c.PriceRange.MaxCents = cents
	}

	for _, raw := range values[ParamRating] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		r, err := cast.ToFloat64E(raw)
		if err != nil || math.IsNaN(r) || r < 0 || r > 5 {
			return Criteria{}, commerce.NewInvalidArgumentf("rating must be a number between 0 and 5, got %q", raw)
		}
		c.MinRatings = append(c.MinRatings, r)
	}

	if raw := strings.TrimSpace(values.Get(ParamInStock)); raw != "" {
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return Criteria{}, commerce.NewInvalidArgumentf("in_stock must be a boolean, got %q", raw)
		}
		c.InStockOnly = b
	}
	return c, nil
}

func parsePrice(field, raw string) (int64, error) {
	amount, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, commerce.NewInvalidArgumentf("%s must be a non-negative number, got %q", field, raw)
	}
	return ToCents(amount), nil
}

// ToCents converts a currency amount to cents, rounding half away from zero
// and saturating at the int64 range.
func ToCents(amount float64) int64 {
	cents := math.Round(amount * 100)
	if cents >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(cents)
}
