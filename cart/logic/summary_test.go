package logic

import "testing"

func headphonesLine() []*LineItem {
	return []*LineItem{{ProductID: "1", Name: "Wireless Headphones", Quantity: 1, UnitPriceCents: 29900, OriginalPriceCents: 34900, InStock: true}}
}

func TestComputeSummary_SingleDiscountedItem(t *testing.T) {
	s := ComputeSummary(headphonesLine(), nil, DefaultPricingPolicy())

	if s.ItemCount != 1 {
		t.Errorf("expected item count 1, got %d", s.ItemCount)
	}
	if s.SubtotalCents != 29900 {
		t.Errorf("expected subtotal 29900, got %d", s.SubtotalCents)
	}
	if s.SavingsCents != 5000 {
		t.Errorf("expected savings 5000, got %d", s.SavingsCents)
	}
	if s.ShippingCents != 0 {
		t.Errorf("expected free shipping, got %d", s.ShippingCents)
	}
	if s.TaxCents != 2392 {
		t.Errorf("expected tax 2392, got %d", s.TaxCents)
	}
	if s.DiscountCents != 0 {
		t.Errorf("expected no discount, got %d", s.DiscountCents)
	}
	if s.TotalCents != 32292 {
		t.Errorf("expected total 32292, got %d", s.TotalCents)
	}
}

func TestComputeSummary_WithSave10(t *testing.T) {
	promo, _ := DefaultPromoTable().Lookup("save10")
	s := ComputeSummary(headphonesLine(), &promo, DefaultPricingPolicy())

	if s.DiscountCents != 2990 {
		t.Errorf("expected discount 2990, got %d", s.DiscountCents)
	}
	if s.TotalCents != 29302 {
		t.Errorf("expected total 29302, got %d", s.TotalCents)
	}
	if s.PromoCode != "SAVE10" {
		t.Errorf("expected promo code SAVE10, got %q", s.PromoCode)
	}
}

func TestComputeSummary_ShippingThreshold(t *testing.T) {
	policy := DefaultPricingPolicy()
	cases := []struct {
		subtotal int64
		shipping int64
	}{
		{10000, 1500},
		{10001, 0},
		{0, 1500},
	}
	for _, tc := range cases {
		items := []*LineItem{{ProductID: "x", Quantity: 1, UnitPriceCents: tc.subtotal, OriginalPriceCents: tc.subtotal, InStock: true}}
		if got := ComputeSummary(items, nil, policy).ShippingCents; got != tc.shipping {
			t.Errorf("subtotal %d: expected shipping %d, got %d", tc.subtotal, tc.shipping, got)
		}
	}
}

func TestComputeSummary_FreeShippingGap(t *testing.T) {
	policy := DefaultPricingPolicy()
	cases := []struct {
		subtotal int64
		gap      int64
		hint     string
	}{
		{10000, 1, "Add $0.01 more for FREE shipping"},
		{4900, 5101, "Add $51.01 more for FREE shipping"},
		{10001, 0, ""},
	}
	for _, tc := range cases {
		items := []*LineItem{{ProductID: "x", Quantity: 1, UnitPriceCents: tc.subtotal, OriginalPriceCents: tc.subtotal, InStock: true}}
		s := ComputeSummary(items, nil, policy)
		if s.FreeShippingGapCents != tc.gap {
			t.Errorf("subtotal %d: expected gap %d, got %d", tc.subtotal, tc.gap, s.FreeShippingGapCents)
		}
		if got := s.Display().FreeShippingHint; got != tc.hint {
			t.Errorf("subtotal %d: expected hint %q, got %q", tc.subtotal, tc.hint, got)
		}
	}
}

func TestComputeSummary_EmptyCart(t *testing.T) {
	s := ComputeSummary(nil, nil, DefaultPricingPolicy())
	if s.SubtotalCents != 0 || s.TaxCents != 0 {
		t.Errorf("expected zero subtotal and tax, got %d/%d", s.SubtotalCents, s.TaxCents)
	}
	if s.TotalCents != 1500 {
		t.Errorf("expected total to be flat shipping 1500, got %d", s.TotalCents)
	}
}

func TestComputeSummary_FixedPromoCappedAtSubtotal(t *testing.T) {
	promo := NewFixedPromo("BIG", 100000)
	items := []*LineItem{{ProductID: "2", Quantity: 1, UnitPriceCents: 4900, OriginalPriceCents: 6900, InStock: true}}
	s := ComputeSummary(items, &promo, DefaultPricingPolicy())
	if s.DiscountCents != 4900 {
		t.Errorf("expected discount capped at 4900, got %d", s.DiscountCents)
	}
}

func TestComputeSummary_DemoCart(t *testing.T) {
	items := []*LineItem{
		{ProductID: "1", Quantity: 1, UnitPriceCents: 29900, OriginalPriceCents: 34900, InStock: true},
		{ProductID: "2", Quantity: 2, UnitPriceCents: 19900, OriginalPriceCents: 24900, InStock: true},
		{ProductID: "3", Quantity: 1, UnitPriceCents: 7900, OriginalPriceCents: 8900, InStock: false},
	}
	s := ComputeSummary(items, nil, DefaultPricingPolicy())
	if s.ItemCount != 4 {
		t.Errorf("expected 4 units, got %d", s.ItemCount)
	}
	if s.SubtotalCents != 77600 {
		t.Errorf("expected subtotal 77600, got %d", s.SubtotalCents)
	}
	if s.SavingsCents != 16000 {
		t.Errorf("expected savings 16000, got %d", s.SavingsCents)
	}
	if s.TaxCents != 6208 {
		t.Errorf("expected tax 6208, got %d", s.TaxCents)
	}
}

func TestSummary_Display(t *testing.T) {
	d := ComputeSummary(headphonesLine(), nil, DefaultPricingPolicy()).Display()
	if d.Subtotal != "$299.00" || d.Savings != "$50.00" || d.Shipping != "$0.00" {
		t.Errorf("unexpected display %+v", d)
	}
	if d.Tax != "$23.92" || d.Total != "$322.92" {
		t.Errorf("unexpected display %+v", d)
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		0:     "$0.00",
		5:     "$0.05",
		32292: "$322.92",
		-500:  "-$5.00",
	}
	for in, want := range cases {
		if got := FormatCents(in); got != want {
			t.Errorf("FormatCents(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestApplyRate_RoundsHalfUp(t *testing.T) {
	// 6.4 cents
	if got := ApplyRate(80, 800); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
	// 62.5 and 6.5 cents round up
	if got := ApplyRate(625, 1000); got != 63 {
		t.Errorf("expected 63, got %d", got)
	}
	if got := ApplyRate(65, 1000); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
