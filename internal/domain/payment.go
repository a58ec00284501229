package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodPayPal       PaymentMethod = "PAYPAL"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCash         PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodBankTransfer, MethodCash:
		return true
	}
	return false
}

// RequiresCard reports whether card details must be validated before
// the payment is submitted.
func (m PaymentMethod) RequiresCard() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

// Payment is a transaction attempt tied to a booking. The persisted status is
// authoritative for caller branching; there is no asynchronous confirmation.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id" validate:"required"`
	ClientID      string        `json:"client_id" validate:"required"`
	ClientName    string        `json:"client_name"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at"`
	ProcessedAt   int64         `json:"processed_at"`
}

// PaymentCard carries the card details submitted with card-based methods.
// Never persisted.
type PaymentCard struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	CardHolder string `json:"card_holder"`
}
