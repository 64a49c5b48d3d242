package logic

import (
	"strings"

	"storefront/commerce"
)

// PromoKind selects how a promo's value is applied.
type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFixed      PromoKind = "fixed"
)

// DefaultPromoCode is the code accepted by the default table.
const DefaultPromoCode = "SAVE10"

// Promo is one promo code rule.
type Promo struct {
	Code string    `json:"code"`
	Kind PromoKind `json:"kind"`
	// Percentage promos: basis points of subtotal.
	BasisPoints int64 `json:"basis_points,omitempty"`
	// Fixed promos: cents off, capped at the subtotal.
	AmountCents int64 `json:"amount_cents,omitempty"`
}

// NewPercentagePromo builds a percentage promo from a whole percent.
func NewPercentagePromo(code string, percent int64) Promo {
	return Promo{Code: code, Kind: PromoPercentage, BasisPoints: percent * 100}
}

// NewFixedPromo builds a fixed-amount promo.
func NewFixedPromo(code string, amountCents int64) Promo {
	return Promo{Code: code, Kind: PromoFixed, AmountCents: amountCents}
}

// Validate checks the rule's value against its kind.
func (p Promo) Validate() error {
	if err := commerce.RequireNotEmptyString(strings.TrimSpace(p.Code), ErrMsgPromoRequired); err != nil {
		return err
	}
	switch p.Kind {
	case PromoPercentage:
		if p.BasisPoints < 0 || p.BasisPoints > basisPointsPerUnit {
			return commerce.NewInvalidArgument(ErrMsgPercentageRange)
		}
	case PromoFixed:
		if err := commerce.RequireNonNegative(p.AmountCents, ErrMsgFixedDiscountNeg); err != nil {
			return err
		}
	default:
		return commerce.NewInvalidArgument(ErrMsgInvalidPromoKind)
	}
	return nil
}

// DiscountCents is the discount this promo gives on subtotalCents.
func (p Promo) DiscountCents(subtotalCents int64) int64 {
	switch p.Kind {
	case PromoPercentage:
		return ApplyRate(subtotalCents, p.BasisPoints)
	case PromoFixed:
		if p.AmountCents > subtotalCents {
			return subtotalCents
		}
		return p.AmountCents
	default:
		return 0
	}
}

// PromoTable maps upper-cased codes to their rules.
type PromoTable map[string]Promo

// NewPromoTable validates promos and indexes them by code. Codes must be
// unique ignoring case.
func NewPromoTable(promos ...Promo) (PromoTable, error) {
	table := make(PromoTable, len(promos))
	for _, p := range promos {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := normalizeCode(p.Code)
		if _, dup := table[key]; dup {
			return nil, commerce.NewInvalidArgumentf("%s: %s", ErrMsgDuplicatePromo, p.Code)
		}
		p.Code = key
		table[key] = p
	}
	return table, nil
}

// DefaultPromoTable holds only SAVE10 at 10% off.
func DefaultPromoTable() PromoTable {
	return PromoTable{DefaultPromoCode: NewPercentagePromo(DefaultPromoCode, 10)}
}

// Lookup finds a promo ignoring case and surrounding whitespace.
func (t PromoTable) Lookup(code string) (Promo, bool) {
	p, ok := t[normalizeCode(code)]
	return p, ok
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PromoResult is the outcome of a promo code attempt. When Applied is false
// the caller keeps whatever promo it had active before.
type PromoResult struct {
	Applied bool   `json:"applied"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Promo   *Promo `json:"promo,omitempty"`
}

// ApplyPromoCode looks code up in table. It never mutates anything.
func ApplyPromoCode(table PromoTable, code string) PromoResult {
	promo, ok := table.Lookup(code)
	if !ok {
		return PromoResult{Applied: false, Code: code, Message: ErrMsgInvalidPromo}
	}
	return PromoResult{Applied: true, Code: promo.Code, Message: MsgPromoApplied, Promo: &promo}
}

// HandleApplyPromo is ApplyPromoCode on the CartLogic interface.
func (l *DefaultCartLogic) HandleApplyPromo(table PromoTable, code string) PromoResult {
	return ApplyPromoCode(table, code)
}
