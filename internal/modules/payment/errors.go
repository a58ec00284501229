package payment

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidCard       = errors.New("invalid card details")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrMethodNotAccepted = errors.New("payment method not accepted")
)
