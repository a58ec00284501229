package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
	UpdateActive(ctx context.Context, id string, active bool) error
	UpdateStats(ctx context.Context, id string, stats repository.ClientStats) error
}

type BookingStatsReader interface {
	StatsForClient(ctx context.Context, clientID string) (repository.ClientStats, error)
}

// Service covers the admin user-management and staff client screens.
type Service struct {
	users    UserRepository
	bookings BookingStatsReader
	log      zerolog.Logger
}

func NewService(users UserRepository, bookings BookingStatsReader, log zerolog.Logger) *Service {
	return &Service{users: users, bookings: bookings, log: log}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	list, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// CreateUser is the admin path that can assign any role directly.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() || strings.TrimSpace(req.FullName) == "" {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("user created by admin")

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	if !role.Valid() {
		return ErrValidation
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("user role updated")
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, active bool) error {
	if err := s.users.UpdateActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListClients(ctx context.Context) ([]ClientView, error) {
	clients, err := s.users.GetByRole(ctx, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	out := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		c.PasswordHash = ""
		out = append(out, ClientView{User: c, Tier: c.Tier(), IsVIP: c.IsVIP()})
	}
	return out, nil
}

// SearchClients filters the fetched client list by a case-insensitive
// substring over name, email and phone.
func (s *Service) SearchClients(ctx context.Context, query string) ([]ClientView, error) {
	clients, err := s.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients, nil
	}

	out := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.FullName), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ClientStats recomputes the denormalized counters from the booking rows,
// persists them back and returns the refreshed view.
func (s *Service) ClientStats(ctx context.Context, id string) (*ClientView, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stats, err := s.bookings.StatsForClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateStats(ctx, id, stats); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	u.TotalBookings = stats.TotalBookings
	u.TotalSpent = stats.TotalSpent
	u.LastBookingDate = stats.LastBookingDate
	return &ClientView{User: *u, Tier: u.Tier(), IsVIP: u.IsVIP()}, nil
}
