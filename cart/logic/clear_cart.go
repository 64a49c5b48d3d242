package logic

import "time"

// HandleClearCart removes every line. Clearing an empty cart is a no-op.
func (l *DefaultCartLogic) HandleClearCart(state *CartState) (*CartCleared, error) {
	if state.IsEmpty() {
		return nil, nil
	}
	return &CartCleared{
		Lines:     len(state.Items),
		ClearedAt: time.Now().UTC(),
	}, nil
}
