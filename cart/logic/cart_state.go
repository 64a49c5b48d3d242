package logic

// LineItem is one product-quantity pairing in the cart. Pricing and stock
// are a snapshot taken when the product was first added.
type LineItem struct {
	ProductID          string `json:"product_id"`
	Name               string `json:"name"`
	Quantity           int32  `json:"quantity"`
	UnitPriceCents     int64  `json:"unit_price_cents"`
	OriginalPriceCents int64  `json:"original_price_cents"`
	InStock            bool   `json:"in_stock"`
}

// LineTotalCents is unit price times quantity.
func (i *LineItem) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// CartState holds the line items in insertion order. It never contains a
// line with Quantity <= 0.
type CartState struct {
	Items []*LineItem
}

// EmptyState returns a cart with no lines.
func EmptyState() *CartState {
	return &CartState{Items: []*LineItem{}}
}

// Item returns the line for productID, or nil.
func (s *CartState) Item(productID string) *LineItem {
	if i := s.index(productID); i >= 0 {
		return s.Items[i]
	}
	return nil
}

// IsEmpty reports whether the cart has no lines.
func (s *CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s *CartState) Clone() *CartState {
	out := &CartState{Items: make([]*LineItem, len(s.Items))}
	for i, item := range s.Items {
		copied := *item
		out.Items[i] = &copied
	}
	return out
}

func (s *CartState) index(productID string) int {
	for i, item := range s.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Apply folds an event into the state. A nil event is a no-op.
func (s *CartState) Apply(event Event) {
	switch e := event.(type) {
	case *ItemAdded:
		if e == nil {
			return
		}
		if item := s.Item(e.ProductID); item != nil {
			item.Quantity = e.Quantity
			return
		}
		s.Items = append(s.Items, &LineItem{
			ProductID:          e.ProductID,
			Name:               e.Name,
			Quantity:           e.Quantity,
			UnitPriceCents:     e.UnitPriceCents,
			OriginalPriceCents: e.OriginalPriceCents,
			InStock:            e.InStock,
		})

	case *QuantityUpdated:
		if e == nil {
			return
		}
		if item := s.Item(e.ProductID); item != nil {
			item.Quantity = e.NewQuantity
		}

	case *ItemRemoved:
		if e == nil {
			return
		}
		if i := s.index(e.ProductID); i >= 0 {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
		}

	case *CartCleared:
		if e == nil {
			return
		}
		s.Items = []*LineItem{}
	}
}
