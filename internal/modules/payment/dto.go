package payment

import "studiobook/internal/domain"

type ProcessPaymentRequest struct {
	BookingID     string              `json:"booking_id" binding:"required"`
	Amount        float64             `json:"amount" binding:"required,gt=0"`
	PaymentMethod string              `json:"payment_method" binding:"required"`
	Card          *domain.PaymentCard `json:"card,omitempty"`

	// ClientID is filled from the token by the handler.
	ClientID string `json:"-"`
}
