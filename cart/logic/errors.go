package logic

// Error and status messages for the cart domain.
const (
	ErrMsgProductIDRequired = "Product ID is required"
	ErrMsgOutOfStock        = "Product is out of stock"
	ErrMsgItemNotInCart     = "Item not in cart"
	ErrMsgQuantityLimit     = "Quantity limit reached"
	ErrMsgCartEmpty         = "Cart is empty"
	ErrMsgRemoveOutOfStock  = "Please remove out of stock items before checkout"
	ErrMsgInvalidPromo      = "Invalid promo code"
	ErrMsgPromoRequired     = "Promo code is required"
	ErrMsgPercentageRange   = "Percentage must be 0-100"
	ErrMsgFixedDiscountNeg  = "Fixed discount cannot be negative"
	ErrMsgInvalidPromoKind  = "Invalid promo kind"
	ErrMsgDuplicatePromo    = "Duplicate promo code"

	MsgPromoApplied = "Promo code applied"
)
