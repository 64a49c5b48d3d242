package logic

import (
	"fmt"
	"time"

	"storefront/commerce"
)

// Event is a change to a cart produced by a handler and folded into
// CartState by Apply.
type Event interface {
	EventType() string
	Details() []commerce.EventDetail
}

// ItemAdded records an add. Quantity is the line's resulting quantity.
type ItemAdded struct {
	ProductID          string    `json:"product_id"`
	Name               string    `json:"name"`
	Quantity           int32     `json:"quantity"`
	UnitPriceCents     int64     `json:"unit_price_cents"`
	OriginalPriceCents int64     `json:"original_price_cents"`
	InStock            bool      `json:"in_stock"`
	AddedAt            time.Time `json:"added_at"`
}

// QuantityUpdated records a quantity replacement on an existing line.
type QuantityUpdated struct {
	ProductID   string    `json:"product_id"`
	OldQuantity int32     `json:"old_quantity"`
	NewQuantity int32     `json:"new_quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemRemoved records the deletion of a line.
type ItemRemoved struct {
	ProductID string    `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	RemovedAt time.Time `json:"removed_at"`
}

// CartCleared records removal of every line.
type CartCleared struct {
	Lines     int       `json:"lines"`
	ClearedAt time.Time `json:"cleared_at"`
}

func (e *ItemAdded) EventType() string       { return "ItemAdded" }
func (e *QuantityUpdated) EventType() string { return "QuantityUpdated" }
func (e *ItemRemoved) EventType() string     { return "ItemRemoved" }
func (e *CartCleared) EventType() string     { return "CartCleared" }

func (e *ItemAdded) Details() []commerce.EventDetail {
	return []commerce.EventDetail{
		{Label: "product", Value: fmt.Sprintf("%s (%s)", e.Name, e.ProductID)},
		{Label: "quantity", Value: fmt.Sprintf("%d", e.Quantity)},
		{Label: "unit", Value: FormatCents(e.UnitPriceCents)},
	}
}

func (e *QuantityUpdated) Details() []commerce.EventDetail {
	return []commerce.EventDetail{
		{Label: "product", Value: e.ProductID},
		{Label: "quantity", Value: fmt.Sprintf("%d -> %d", e.OldQuantity, e.NewQuantity)},
	}
}

func (e *ItemRemoved) Details() []commerce.EventDetail {
	return []commerce.EventDetail{
		{Label: "product", Value: e.ProductID},
		{Label: "quantity", Value: fmt.Sprintf("%d", e.Quantity)},
	}
}

func (e *CartCleared) Details() []commerce.EventDetail {
	return []commerce.EventDetail{
		{Label: "lines", Value: fmt.Sprintf("%d", e.Lines)},
	}
}
