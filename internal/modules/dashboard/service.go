package dashboard

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	"studiobook/internal/modules/analytics"
	"studiobook/internal/modules/equipment"
)

type BookingReader interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByClient(ctx context.Context, clientID string) ([]domain.Booking, error)
	CountByStatusSince(ctx context.Context, status domain.BookingStatus, fromMs int64) (int64, error)
}

type PaymentReader interface {
	GetByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
}

type MaintenanceAlerter interface {
	MaintenanceAlerts(ctx context.Context) ([]equipment.EquipmentView, error)
}

type AnalyticsProvider interface {
	Summary(ctx context.Context) (*analytics.Summary, error)
}

type UserCounter interface {
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

// Service assembles the role-specific home screens from the other modules.
type Service struct {
	bookings  BookingReader
	payments  PaymentReader
	equipment MaintenanceAlerter
	analytics AnalyticsProvider
	users     UserCounter
	log       zerolog.Logger
	now       func() time.Time
}

func NewService(
	bookings BookingReader,
	payments PaymentReader,
	equipment MaintenanceAlerter,
	analytics AnalyticsProvider,
	users UserCounter,
	log zerolog.Logger,
) *Service {
	return &Service{
		bookings:  bookings,
		payments:  payments,
		equipment: equipment,
		analytics: analytics,
		users:     users,
		log:       log,
		now:       time.Now,
	}
}

func (s *Service) ForClient(ctx context.Context, clientID string) (*ClientDashboard, error) {
	bookings, err := s.bookings.GetByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	dayStart := s.todayStart().UnixMilli()
	upcoming := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.Date >= dayStart && b.Status != domain.BookingCancelled && b.Status != domain.BookingCompleted {
			upcoming = append(upcoming, b)
		}
	}

	payments, err := s.payments.GetByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	var spent float64
	var pending int
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentCompleted:
			spent += p.Amount
		case domain.PaymentPending:
			pending++
		}
	}

	return &ClientDashboard{
		UpcomingBookings: upcoming,
		TotalSpent:       spent,
		PendingPayments:  pending,
	}, nil
}

func (s *Service) ForStaff(ctx context.Context) (*StaffDashboard, error) {
	all, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := s.todayStart()
	dayEnd := dayStart.Add(24 * time.Hour)
	today := make([]domain.Booking, 0)
	for _, b := range all {
		if b.Date >= dayStart.UnixMilli() && b.Date < dayEnd.UnixMilli() {
			today = append(today, b)
		}
	}

	pending, err := s.bookings.CountByStatusSince(ctx, domain.BookingPending, 0)
	if err != nil {
		return nil, err
	}

	alerts, err := s.equipment.MaintenanceAlerts(ctx)
	if err != nil {
		return nil, err
	}

	return &StaffDashboard{
		TodayBookings:     today,
		PendingCount:      pending,
		MaintenanceAlerts: alerts,
	}, nil
}

func (s *Service) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	summary, err := s.analytics.Summary(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.users.CountByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	staff, err := s.users.CountByRole(ctx, domain.RoleStaff)
	if err != nil {
		return nil, err
	}
	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Summary:      summary,
		TotalClients: clients,
		TotalStaff:   staff,
		TotalAdmins:  admins,
	}, nil
}

func (s *Service) todayStart() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
