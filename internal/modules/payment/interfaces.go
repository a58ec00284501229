package payment

import (
	"context"

	"studiobook/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	Resolve(ctx context.Context, id string, status domain.PaymentStatus, processedAtMs int64) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
	GetAll(ctx context.Context) ([]domain.Payment, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type ConfigProvider interface {
	GetSystemConfig(ctx context.Context) (domain.SystemConfig, error)
}
