package logic

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in    string
		all   bool
		label string
	}{
		{"All", true, ""},
		{"all", true, ""},
		{"", true, ""},
		{"  ", true, ""},
		{"Electronics", false, "Electronics"},
		{" Home & Garden ", false, "Home & Garden"},
	}
	for _, tc := range cases {
		c := ParseCategory(tc.in)
		if c.IsAll() != tc.all {
			t.Errorf("%q: expected IsAll=%v", tc.in, tc.all)
		}
		if c.Name() != tc.label {
			t.Errorf("%q: expected name %q, got %q", tc.in, tc.label, c.Name())
		}
	}
}

func TestCategory_ZeroValueIsAll(t *testing.T) {
	var c Category
	if !c.IsAll() {
		t.Error("zero Category should be All")
	}
	if c.String() != "All" {
		t.Errorf("expected All, got %q", c.String())
	}
	if Named("Books").String() != "Books" {
		t.Error("named category should print its label")
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(fixtureProducts(), "4")
	if !ok || p.Name != "Yoga Mat Premium" {
		t.Errorf("expected Yoga Mat Premium, got %+v", p)
	}
	if _, ok := Lookup(fixtureProducts(), "404"); ok {
		t.Error("expected no product for unknown id")
	}
}

func TestListPriceCents(t *testing.T) {
	if got := (Product{PriceCents: 29900, OriginalPriceCents: 34900}).ListPriceCents(); got != 34900 {
		t.Errorf("expected 34900, got %d", got)
	}
	if got := (Product{PriceCents: 29900}).ListPriceCents(); got != 29900 {
		t.Errorf("missing original price should fall back to price, got %d", got)
	}
}

func TestCriteria_Refined(t *testing.T) {
	const sliderMax = 100000
	c := DefaultCriteria()
	c.PriceRange = PriceRange{MinCents: 0, MaxCents: sliderMax}
	c.Category = Named(CategorySports)
	c.SearchText = "mat"
	if c.Refined(sliderMax) {
		t.Error("category and search alone are not refinements")
	}

	r := c
	r.InStockOnly = true
	if !r.Refined(sliderMax) {
		t.Error("in-stock toggle should count")
	}
	r = c
	r.MinRatings = []float64{4.5}
	if !r.Refined(sliderMax) {
		t.Error("rating chip should count")
	}
	r = c
	r.PriceRange.MaxCents = 50000
	if !r.Refined(sliderMax) {
		t.Error("narrowed max should count")
	}
}
