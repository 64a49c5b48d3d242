package logic

// Ledger pairs a CartState with its event log and applies handler results
// as they are produced. It is not safe for concurrent use.
type Ledger struct {
	logic  CartLogic
	state  *CartState
	events []Event
}

// NewLedger creates an empty ledger.
func NewLedger(logic CartLogic) *Ledger {
	if logic == nil {
		logic = NewCartLogic()
	}
	return &Ledger{logic: logic, state: EmptyState()}
}

// State returns the live cart state.
func (l *Ledger) State() *CartState { return l.state }

// Events returns the applied events in order.
func (l *Ledger) Events() []Event { return l.events }

func (l *Ledger) record(e Event) Event {
	if e == nil {
		return nil
	}
	l.state.Apply(e)
	l.events = append(l.events, e)
	return e
}

// AddItem adds one unit of product.
func (l *Ledger) AddItem(product ProductSnapshot) (Event, error) {
	e, err := l.logic.HandleAddItem(l.state, product)
	if err != nil {
		return nil, err
	}
	return l.record(e), nil
}

// SetQuantity replaces a line's quantity, removing it at zero or below.
func (l *Ledger) SetQuantity(productID string, n int32) (Event, error) {
	e, err := l.logic.HandleSetQuantity(l.state, productID, n)
	if err != nil {
		return nil, err
	}
	return l.record(e), nil
}

// RemoveItem deletes a line if present.
func (l *Ledger) RemoveItem(productID string) (Event, error) {
	e, err := l.logic.HandleRemoveItem(l.state, productID)
	if err != nil || e == nil {
		return nil, err
	}
	return l.record(e), nil
}

// DecrementItem takes one unit off a line.
func (l *Ledger) DecrementItem(productID string) (Event, error) {
	e, err := l.logic.HandleDecrementItem(l.state, productID)
	if err != nil {
		return nil, err
	}
	return l.record(e), nil
}

// Clear removes every line.
func (l *Ledger) Clear() (Event, error) {
	e, err := l.logic.HandleClearCart(l.state)
	if err != nil || e == nil {
		return nil, err
	}
	return l.record(e), nil
}
