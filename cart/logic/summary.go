package logic

import "fmt"

// PricingPolicy holds the shipping and tax parameters for summaries.
type PricingPolicy struct {
	// Shipping is free when the subtotal strictly exceeds this.
	FreeShippingThresholdCents int64
	FlatShippingCents          int64
	TaxRateBasisPoints         int64
}

// DefaultPricingPolicy: free shipping over $100.00, else $15.00; 8% tax.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		FreeShippingThresholdCents: 10000,
		FlatShippingCents:          1500,
		TaxRateBasisPoints:         800,
	}
}

// ShippingCents returns the shipping charge for a subtotal.
func (p PricingPolicy) ShippingCents(subtotalCents int64) int64 {
	if subtotalCents > p.FreeShippingThresholdCents {
		return 0
	}
	return p.FlatShippingCents
}

// FreeShippingGapCents is how much more subtotal earns free shipping, or zero
// when shipping is already free.
func (p PricingPolicy) FreeShippingGapCents(subtotalCents int64) int64 {
	if p.ShippingCents(subtotalCents) == 0 {
		return 0
	}
	return p.FreeShippingThresholdCents - subtotalCents + 1
}

// TaxCents returns the tax on a subtotal.
func (p PricingPolicy) TaxCents(subtotalCents int64) int64 {
	return ApplyRate(subtotalCents, p.TaxRateBasisPoints)
}

// Summary is the order summary for a set of line items. All amounts in cents.
// FreeShippingGapCents is the subtotal still needed for free shipping.
type Summary struct {
	ItemCount            int64  `json:"item_count"`
	SubtotalCents        int64  `json:"subtotal_cents"`
	SavingsCents         int64  `json:"savings_cents"`
	ShippingCents        int64  `json:"shipping_cents"`
	TaxCents             int64  `json:"tax_cents"`
	DiscountCents        int64  `json:"discount_cents"`
	TotalCents           int64  `json:"total_cents"`
	FreeShippingGapCents int64  `json:"free_shipping_gap_cents"`
	PromoCode            string `json:"promo_code,omitempty"`
}

// SummaryDisplay is a Summary rendered as currency strings. FreeShippingHint
// is empty once shipping is free.
type SummaryDisplay struct {
	ItemCount        int64  `json:"item_count"`
	Subtotal         string `json:"subtotal"`
	Savings          string `json:"savings"`
	Shipping         string `json:"shipping"`
	Tax              string `json:"tax"`
	Discount         string `json:"discount"`
	Total            string `json:"total"`
	FreeShippingHint string `json:"free_shipping_hint,omitempty"`
}

// ComputeSummary derives the order summary. Savings are the literal
// (original - unit) * quantity sum and may be negative if a snapshot's
// original price is below its unit price. promo may be nil.
func ComputeSummary(items []*LineItem, promo *Promo, policy PricingPolicy) Summary {
	var s Summary
	for _, item := range items {
		qty := int64(item.Quantity)
		s.ItemCount += qty
		s.SubtotalCents += item.UnitPriceCents * qty
		s.SavingsCents += (item.OriginalPriceCents - item.UnitPriceCents) * qty
	}

	s.ShippingCents = policy.ShippingCents(s.SubtotalCents)
	s.FreeShippingGapCents = policy.FreeShippingGapCents(s.SubtotalCents)
	s.TaxCents = policy.TaxCents(s.SubtotalCents)
	if promo != nil {
		s.DiscountCents = promo.DiscountCents(s.SubtotalCents)
		s.PromoCode = promo.Code
	}
	s.TotalCents = s.SubtotalCents + s.ShippingCents + s.TaxCents - s.DiscountCents
	return s
}

// Display renders every amount as a currency string.
func (s Summary) Display() SummaryDisplay {
	var hint string
	if s.FreeShippingGapCents > 0 {
		hint = fmt.Sprintf("Add %s more for FREE shipping", FormatCents(s.FreeShippingGapCents))
	}
	return SummaryDisplay{
		ItemCount:        s.ItemCount,
		Subtotal:         FormatCents(s.SubtotalCents),
		Savings:          FormatCents(s.SavingsCents),
		Shipping:         FormatCents(s.ShippingCents),
		Tax:              FormatCents(s.TaxCents),
		Discount:         FormatCents(s.DiscountCents),
		Total:            FormatCents(s.TotalCents),
		FreeShippingHint: hint,
	}
}
