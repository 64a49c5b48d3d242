package logic

import (
	"fmt"
	"time"

	"storefront/commerce"
)

// Error messages for status updates.
const (
	ErrMsgOrderIDRequired    = "Order ID is required"
	ErrMsgUnknownStatus      = "Unknown order status"
	ErrMsgInvalidTransition  = "Invalid status transition"
	ErrMsgOrderAlreadyClosed = "Order is already closed"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusShipped, StatusCancelled},
	StatusShipped:  {StatusDelivered},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusChanged is the result of a successful status update.
type StatusChanged struct {
	OrderID   string    `json:"order_id"`
	From      Status    `json:"from"`
	To        Status    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}

func (e *StatusChanged) EventType() string { return "OrderStatusUpdated" }

func (e *StatusChanged) Details() []commerce.EventDetail {
	return []commerce.EventDetail{
		{Label: "order", Value: e.OrderID},
		{Label: "status", Value: fmt.Sprintf("%s -> %s", e.From, e.To)},
	}
}

// HandleUpdateStatus validates moving order to the status named by next.
func HandleUpdateStatus(order Order, next string) (*StatusChanged, error) {
	if err := commerce.RequireNotEmptyString(order.ID, ErrMsgOrderIDRequired); err != nil {
		return nil, err
	}
	to, ok := ParseStatus(next)
	if !ok {
		return nil, commerce.NewInvalidArgumentf("%s: %q", ErrMsgUnknownStatus, next)
	}
	for _, closed := range terminalStatuses {
		if err := commerce.RequireStatusNot(string(order.Status), string(closed), ErrMsgOrderAlreadyClosed); err != nil {
			return nil, err
		}
	}
	if !CanTransition(order.Status, to) {
		return nil, commerce.NewFailedPreconditionf("%s: %s -> %s", ErrMsgInvalidTransition, order.Status, to)
	}

	return &StatusChanged{
		OrderID:   order.ID,
		From:      order.Status,
		To:        to,
		ChangedAt: time.Now().UTC(),
	}, nil
}

// Apply returns order with the change applied.
func (e *StatusChanged) Apply(order Order) Order {
	if order.ID == e.OrderID {
		order.Status = e.To
	}
	return order
}
