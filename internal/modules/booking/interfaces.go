package booking

import (
	"context"

	"studiobook/internal/domain"
)

// BookingRepository defines the storage operations the workflow needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByClient(ctx context.Context, clientID string) ([]domain.Booking, error)
	GetActiveForStudioOnDay(ctx context.Context, studio domain.Studio, dayStart, dayEnd int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// EquipmentReader resolves the selected catalog items at creation time.
type EquipmentReader interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Equipment, error)
}

// UserReader resolves the booking client's display name.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ConfigProvider supplies the operational configuration; implementations fall
// back to defaults when nothing has been saved yet.
type ConfigProvider interface {
	GetSystemConfig(ctx context.Context) (domain.SystemConfig, error)
}

// SnapshotBroadcaster pushes the full booking list to realtime subscribers.
type SnapshotBroadcaster interface {
	BroadcastBookings(bookings []domain.Booking)
}
