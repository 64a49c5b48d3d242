package logic

import (
	"math"
	"time"

	"storefront/commerce"
)

// MaxLineQuantity is the largest quantity a single line can hold.
const MaxLineQuantity int32 = math.MaxInt32

// HandleAddItem adds one unit of product. An existing line is incremented and
// keeps its original snapshot; a new line starts at quantity 1.
func (l *DefaultCartLogic) HandleAddItem(state *CartState, product ProductSnapshot) (*ItemAdded, error) {
	if err := commerce.RequireNotEmptyString(product.ProductID, ErrMsgProductIDRequired); err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, commerce.NewFailedPrecondition(ErrMsgOutOfStock)
	}

	if item := state.Item(product.ProductID); item != nil {
		if item.Quantity >= MaxLineQuantity {
			return nil, commerce.NewFailedPrecondition(ErrMsgQuantityLimit)
		}
		return &ItemAdded{
			ProductID:          item.ProductID,
			Name:               item.Name,
			Quantity:           item.Quantity + 1,
			UnitPriceCents:     item.UnitPriceCents,
			OriginalPriceCents: item.OriginalPriceCents,
			InStock:            item.InStock,
			AddedAt:            time.Now().UTC(),
		}, nil
	}

	return &ItemAdded{
		ProductID:          product.ProductID,
		Name:               product.Name,
		Quantity:           1,
		UnitPriceCents:     product.UnitPriceCents,
		OriginalPriceCents: product.OriginalPriceCents,
		InStock:            product.InStock,
		AddedAt:            time.Now().UTC(),
	}, nil
}
