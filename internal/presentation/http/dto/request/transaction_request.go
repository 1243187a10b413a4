package request

// TransactionFilterRequest represents transaction list filter parameters
type TransactionFilterRequest struct {
	Type          string `form:"type"`
	PaymentMethod string `form:"payment_method"`
	DirectOnly    bool   `form:"direct_only"`
	CashierID     string `form:"cashier_id"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
