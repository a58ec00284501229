package domain

import "time"

type Studio string

const (
	StudioA Studio = "STUDIO_A"
	StudioB Studio = "STUDIO_B"
	StudioC Studio = "STUDIO_C"
	StudioD Studio = "STUDIO_D"
)

// Label is the display name used on receipts and reports.
func (s Studio) Label() string {
	switch s {
	case StudioA:
		return "Studio A"
	case StudioB:
		return "Studio B"
	case StudioC:
		return "Studio C"
	case StudioD:
		return "Studio D"
	}
	return string(s)
}

func (s Studio) Valid() bool {
	switch s {
	case StudioA, StudioB, StudioC, StudioD:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Re-setting the current status is accepted as a no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingInProgress || next == BookingCancelled
	case BookingInProgress:
		return next == BookingCompleted
	}
	return false
}

// Booking is a reservation of a studio and optional equipment for a time
// window on a given day. TotalAmount is computed once at creation and is not
// re-derived when equipment pricing changes later.
type Booking struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id" validate:"required"`
	ClientName  string        `json:"client_name"`
	Studio      Studio        `json:"studio" validate:"required"`
	Equipment   []Equipment   `json:"equipment"`
	Date        int64         `json:"date"`
	StartTime   string        `json:"start_time" validate:"required"`
	EndTime     string        `json:"end_time" validate:"required"`
	TotalHours  int           `json:"total_hours"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
