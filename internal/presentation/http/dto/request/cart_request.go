package request

// AddCartItemRequest adds one unit of a product (optionally one of its
// variants) to the session's cart. Repeating the request increments the
// merged line's quantity.
type AddCartItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	VariantID *string `json:"variant_id" binding:"omitempty,uuid"`
}

// UpdateCartItemRequest sets the absolute quantity of a cart line. A
// quantity of zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}
