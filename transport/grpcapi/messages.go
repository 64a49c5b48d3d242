package grpcapi

import (
	catalog "storefront/catalog/logic"
)

// CreateSessionRequest opens a session, optionally pre-filled with the demo
// cart.
type CreateSessionRequest struct {
	Demo bool `json:"demo"`
}

// SessionRequest addresses one session.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// ItemRequest addresses one product in a session's cart.
type ItemRequest struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
}

// SetQuantityRequest replaces a line's quantity.
type SetQuantityRequest struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// PromoRequest applies a promo code.
type PromoRequest struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

// BrowseRequest carries filter criteria. Nil price bounds are unbounded.
type BrowseRequest struct {
	SessionID     string    `json:"session_id,omitempty"`
	Category      string    `json:"category,omitempty"`
	Search        string    `json:"search,omitempty"`
	MinPriceCents *int64    `json:"min_price_cents,omitempty"`
	MaxPriceCents *int64    `json:"max_price_cents,omitempty"`
	MinRatings    []float64 `json:"min_ratings,omitempty"`
	InStockOnly   bool      `json:"in_stock_only,omitempty"`
}

// Criteria converts the request to catalog criteria.
func (r *BrowseRequest) Criteria() catalog.Criteria {
	c := catalog.DefaultCriteria()
	c.Category = catalog.ParseCategory(r.Category)
	c.SearchText = r.Search
	if r.MinPriceCents != nil {
		c.PriceRange.MinCents = *r.MinPriceCents
	}
	if r.MaxPriceCents != nil {
		c.PriceRange.MaxCents = *r.MaxPriceCents
	}
	c.MinRatings = r.MinRatings
	c.InStockOnly = r.InStockOnly
	return c
}

// ProductRequest looks up one product.
type ProductRequest struct {
	ProductID string `json:"product_id"`
}

// SearchInventoryRequest is the seller-side product search.
type SearchInventoryRequest struct {
	Search string `json:"search"`
}

// ProductList wraps a product slice.
type ProductList struct {
	Products []catalog.Product `json:"products"`
}

// ListOrdersRequest filters seller orders.
type ListOrdersRequest struct {
	Search string `json:"search,omitempty"`
	Status string `json:"status,omitempty"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Empty is an empty request or response.
type Empty struct{}
