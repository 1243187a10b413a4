package request

// CheckoutRequest commits the session's cart (or a direct amount) as a sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	// DirectAmount, when present, commits a direct billing sale for this
	// decimal amount without touching the cart or stock.
	DirectAmount *float64 `json:"direct_amount" binding:"omitempty,gt=0"`
}

// EmailReceiptRequest mails a committed transaction's receipt
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
