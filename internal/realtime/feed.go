package realtime

import "studiobook/internal/domain"

// BookingFeed adapts the hub to the snapshot publisher the booking module
// expects.
type BookingFeed struct {
	hub *Hub
}

func NewBookingFeed(hub *Hub) *BookingFeed {
	return &BookingFeed{hub: hub}
}

func (f *BookingFeed) BroadcastBookings(bookings []domain.Booking) {
	f.hub.Broadcast(SnapshotMessage{Type: "bookings", Bookings: bookings})
}
