package logic

import (
	"time"

	"storefront/commerce"
)

// HandleRemoveItem deletes a line. Removing an absent product returns a nil
// event and no error.
func (l *DefaultCartLogic) HandleRemoveItem(state *CartState, productID string) (*ItemRemoved, error) {
	if err := commerce.RequireNotEmptyString(productID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}

	item := state.Item(productID)
	if item == nil {
		return nil, nil
	}

	return &ItemRemoved{
		ProductID: productID,
		Quantity:  item.Quantity,
		RemovedAt: time.Now().UTC(),
	}, nil
}

// HandleDecrementItem takes one unit off a line, removing it at zero.
func (l *DefaultCartLogic) HandleDecrementItem(state *CartState, productID string) (Event, error) {
	if err := commerce.RequireNotEmptyString(productID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}

	item := state.Item(productID)
	if item == nil {
		return nil, nil
	}
	return l.HandleSetQuantity(state, productID, item.Quantity-1)
}
