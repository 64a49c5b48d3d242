// Package logic holds seller-side order queries and status transitions.
package logic

import "strings"

// Status is an order's fulfilment state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// FilterAll matches every status.
const FilterAll = "all"

// Statuses lists every status in tab order.
func Statuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusShipped, StatusDelivered, StatusCancelled}
}

// ParseStatus resolves a label case-insensitively.
func ParseStatus(label string) (Status, bool) {
	for _, s := range Statuses() {
		if strings.EqualFold(string(s), strings.TrimSpace(label)) {
			return s, true
		}
	}
	return "", false
}

// terminalStatuses have no outgoing transition.
var terminalStatuses = []Status{StatusDelivered, StatusCancelled}

// Order is one row of the seller's order list.
type Order struct {
	ID          string `json:"id" yaml:"id"`
	Customer    string `json:"customer" yaml:"customer"`
	Email       string `json:"email" yaml:"email"`
	Product     string `json:"product" yaml:"product"`
	Quantity    int32  `json:"quantity" yaml:"quantity"`
	AmountCents int64  `json:"amount_cents" yaml:"amount_cents"`
	Status      Status `json:"status" yaml:"status"`
	Date        string `json:"date" yaml:"date"`
	Address     string `json:"address" yaml:"address"`
}

// Lookup returns the order with id, or false.
func Lookup(orders []Order, id string) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
