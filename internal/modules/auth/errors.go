package auth

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserInactive        = errors.New("user account is deactivated")
	ErrUserNotFound        = errors.New("user not found")
	ErrRegistrationsClosed = errors.New("new registrations are disabled")
)
