// Package logic implements the cart ledger: line item bookkeeping with
// delete-on-zero semantics, promo code lookup, order summary arithmetic and
// checkout stock gating.
package logic

// ProductSnapshot is the pricing and stock data copied into a new line.
type ProductSnapshot struct {
	ProductID          string
	Name               string
	UnitPriceCents     int64
	OriginalPriceCents int64
	InStock            bool
}

// CartLogic provides the cart operations over caller-owned state.
//
// Handlers validate and return the resulting event without touching state;
// the caller folds it in with CartState.Apply. A nil event means no change.
type CartLogic interface {
	// RebuildState reconstructs cart state from an event log.
	RebuildState(events []Event) *CartState

	HandleAddItem(state *CartState, product ProductSnapshot) (*ItemAdded, error)
	HandleSetQuantity(state *CartState, productID string, newQuantity int32) (Event, error)
	HandleRemoveItem(state *CartState, productID string) (*ItemRemoved, error)
	HandleDecrementItem(state *CartState, productID string) (Event, error)
	HandleClearCart(state *CartState) (*CartCleared, error)
	HandleApplyPromo(table PromoTable, code string) PromoResult
	HandleCheckout(state *CartState, promo *Promo, policy PricingPolicy) (*CheckoutApproved, error)
}

// DefaultCartLogic is the default implementation of CartLogic.
type DefaultCartLogic struct{}

// NewCartLogic creates a new CartLogic instance.
func NewCartLogic() CartLogic {
	return &DefaultCartLogic{}
}

// RebuildState replays events onto an empty cart.
func (l *DefaultCartLogic) RebuildState(events []Event) *CartState {
	state := EmptyState()
	for _, e := range events {
		state.Apply(e)
	}
	return state
}
