package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "CLIENT"
	RoleStaff  UserRole = "STAFF"
	RoleAdmin  UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type ClientTier string

const (
	TierBronze   ClientTier = "BRONZE"
	TierSilver   ClientTier = "SILVER"
	TierGold     ClientTier = "GOLD"
	TierPlatinum ClientTier = "PLATINUM"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name" validate:"required"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	// Denormalized client stats, recomputed from bookings on demand.
	TotalBookings   int     `json:"total_bookings"`
	TotalSpent      float64 `json:"total_spent"`
	LastBookingDate int64   `json:"last_booking_date"`
	AverageRating   float64 `json:"average_rating"`
	Notes           string  `json:"notes,omitempty"`
}

// Tier maps completed booking volume to the loyalty tier shown on client cards.
func (u User) Tier() ClientTier {
	switch {
	case u.TotalBookings >= 20:
		return TierPlatinum
	case u.TotalBookings >= 10:
		return TierGold
	case u.TotalBookings >= 5:
		return TierSilver
	}
	return TierBronze
}

func (u User) IsVIP() bool {
	return u.TotalBookings > 10
}
