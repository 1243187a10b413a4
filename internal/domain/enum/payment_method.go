package enum

// PaymentMethod represents how a sale was paid for
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

// Valid reports whether the payment method is one of the accepted values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI,
		PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	}
	return false
}
