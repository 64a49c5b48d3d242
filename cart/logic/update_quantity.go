package logic

import (
	"time"

	"storefront/commerce"
)

// HandleSetQuantity replaces a line's quantity. A quantity of zero or less
// removes the line exactly as HandleRemoveItem does.
func (l *DefaultCartLogic) HandleSetQuantity(state *CartState, productID string, newQuantity int32) (Event, error) {
	if err := commerce.RequireNotEmptyString(productID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}

	if newQuantity <= 0 {
		removed, err := l.HandleRemoveItem(state, productID)
		if err != nil || removed == nil {
			return nil, err
		}
		return removed, nil
	}

	item := state.Item(productID)
	if item == nil {
		return nil, commerce.NewFailedPrecondition(ErrMsgItemNotInCart)
	}
	if item.Quantity == newQuantity {
		return nil, nil
	}

	return &QuantityUpdated{
		ProductID:   productID,
		OldQuantity: item.Quantity,
		NewQuantity: newQuantity,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}
