package storefront

import (
	cart "storefront/cart/logic"
	catalog "storefront/catalog/logic"
	orders "storefront/orders/logic"
)

// CartView is the cart as shown to the shopper.
type CartView struct {
	SessionID string              `json:"session_id"`
	Items     []*cart.LineItem    `json:"items"`
	Summary   cart.Summary        `json:"summary"`
	Display   cart.SummaryDisplay `json:"display"`
	Gate      cart.Gate           `json:"gate"`
	Promo     *cart.Promo         `json:"promo,omitempty"`
}

// PromoView pairs a promo attempt with the resulting cart.
type PromoView struct {
	Result cart.PromoResult `json:"result"`
	Cart   CartView         `json:"cart"`
}

// CheckoutView is the checkout decision. Approved is set only when the
// gate allows checkout.
type CheckoutView struct {
	Gate     cart.Gate              `json:"gate"`
	Summary  cart.Summary           `json:"summary"`
	Display  cart.SummaryDisplay    `json:"display"`
	Approved *cart.CheckoutApproved `json:"approved,omitempty"`
}

// BrowseResult is a filtered product listing.
type BrowseResult struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Refined  bool              `json:"refined"`
}

// OrdersView is the seller order list with its filter tabs.
type OrdersView struct {
	Orders []orders.Order       `json:"orders"`
	Counts []orders.StatusCount `json:"counts"`
}

func (s *Service) cartView(sess *session) CartView {
	state := sess.ledger.State().Clone()
	summary := cart.ComputeSummary(state.Items, sess.promo, s.pricing)
	var promo *cart.Promo
	if sess.promo != nil {
		p := *sess.promo
		promo = &p
	}
	return CartView{
		SessionID: sess.id,
		Items:     state.Items,
		Summary:   summary,
		Display:   summary.Display(),
		Gate:      cart.CheckoutGate(state.Items),
		Promo:     promo,
	}
}
