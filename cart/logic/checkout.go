package logic

import (
	"time"

	"storefront/commerce"
)

// Gate is the checkout decision. Blocking lists out-of-stock product ids.
type Gate struct {
	Allowed  bool     `json:"allowed"`
	Reason   string   `json:"reason,omitempty"`
	Blocking []string `json:"blocking,omitempty"`
}

// CheckoutGate allows checkout only for a non-empty cart with every line in
// stock.
func CheckoutGate(items []*LineItem) Gate {
	if err := commerce.RequireNotEmpty(items, ErrMsgCartEmpty); err != nil {
		return Gate{Allowed: false, Reason: err.Message}
	}

	var blocking []string
	for _, item := range items {
		if !item.InStock {
			blocking = append(blocking, item.ProductID)
		}
	}
	if len(blocking) > 0 {
		return Gate{Allowed: false, Reason: ErrMsgRemoveOutOfStock, Blocking: blocking}
	}
	return Gate{Allowed: true}
}

// CheckoutApproved is returned when the gate allows checkout.
type CheckoutApproved struct {
	Summary    Summary   `json:"summary"`
	Lines      int       `json:"lines"`
	ApprovedAt time.Time `json:"approved_at"`
}

// HandleCheckout reports a denied gate as a failed precondition. It does not
// change the cart.
func (l *DefaultCartLogic) HandleCheckout(state *CartState, promo *Promo, policy PricingPolicy) (*CheckoutApproved, error) {
	gate := CheckoutGate(state.Items)
	if !gate.Allowed {
		return nil, commerce.NewFailedPrecondition(gate.Reason)
	}

	return &CheckoutApproved{
		Summary:    ComputeSummary(state.Items, promo, policy),
		Lines:      len(state.Items),
		ApprovedAt: time.Now().UTC(),
	}, nil
}
