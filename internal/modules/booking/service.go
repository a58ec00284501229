package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	"studiobook/internal/metrics"
	"studiobook/internal/pkg/validator"
	"studiobook/internal/repository"
)

const fallbackHours = 2

type Service struct {
	bookings  BookingRepository
	equipment EquipmentReader
	users     UserReader
	config    ConfigProvider
	feed      SnapshotBroadcaster
	log       zerolog.Logger
}

func NewService(
	bookings BookingRepository,
	equipment EquipmentReader,
	users UserReader,
	config ConfigProvider,
	feed SnapshotBroadcaster,
	log zerolog.Logger,
) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		users:     users,
		config:    config,
		feed:      feed,
		log:       log,
	}
}

// CreateBooking validates the draft, freezes the price and persists the
// reservation. Equipment availability stays advisory: unavailable items can be
// selected, matching the catalog's informational role.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	studio := domain.Studio(req.Studio)
	if !studio.Valid() {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.StartTime) == "" || strings.TrimSpace(req.EndTime) == "" {
		return nil, ErrValidation
	}
	if req.ClientID == "" {
		return nil, ErrValidation
	}

	cfg, err := s.config.GetSystemConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.StudioEnabled(studio) || cfg.MaintenanceMode {
		return nil, ErrStudioDisabled
	}

	client, err := s.users.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	selected, err := s.equipment.GetByIDs(ctx, req.EquipmentIDs)
	if err != nil {
		return nil, err
	}
	if len(selected) != len(req.EquipmentIDs) {
		return nil, ErrValidation
	}

	hours := calculateHours(req.StartTime, req.EndTime)
	if cfg.MaxBookingHours > 0 && hours > cfg.MaxBookingHours {
		return nil, ErrValidation
	}

	date := req.Date
	if date == 0 {
		date = time.Now().UnixMilli()
	}

	if err := s.checkConflict(ctx, studio, date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	status := domain.BookingPending
	if cfg.AutoConfirmBookings {
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.FullName,
		Studio:      studio,
		Equipment:   selected,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TotalHours:  hours,
		TotalAmount: calculateTotalAmount(selected, hours),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if fields := validator.Check(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.log.Info().
		Str("booking_id", b.ID).
		Str("studio", string(b.Studio)).
		Str("client_id", b.ClientID).
		Float64("total_amount", b.TotalAmount).
		Msg("booking created")

	s.publishSnapshot(ctx)
	return b, nil
}

// UpdateStatus moves a booking along its lifecycle. Setting the current status
// again succeeds without touching storage.
func (s *Service) UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !newStatus.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status == newStatus {
		return b, nil
	}
	if !b.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	metrics.IncBookingStatusUpdate(string(newStatus))
	s.log.Info().
		Str("booking_id", id).
		Str("from", string(b.Status)).
		Str("to", string(newStatus)).
		Msg("booking status updated")

	b.Status = newStatus
	s.publishSnapshot(ctx)
	return b, nil
}

func (s *Service) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

func (s *Service) GetBookingsByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	return s.bookings.GetByClient(ctx, clientID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// checkConflict rejects overlapping active bookings for the same studio and
// calendar day. Unparsable times cannot be positioned and are let through.
func (s *Service) checkConflict(ctx context.Context, studio domain.Studio, dateMs int64, start, end string) error {
	startHour, okStart := parseHour(start)
	endHour, okEnd := parseHour(end)
	if !okStart || !okEnd {
		return nil
	}
	if endHour <= startHour {
		endHour = startHour + 1
	}

	day := time.UnixMilli(dateMs).UTC().Truncate(24 * time.Hour)
	dayStart := day.UnixMilli()
	dayEnd := day.Add(24 * time.Hour).UnixMilli()

	existing, err := s.bookings.GetActiveForStudioOnDay(ctx, studio, dayStart, dayEnd)
	if err != nil {
		return err
	}

	for _, b := range existing {
		bStart, ok1 := parseHour(b.StartTime)
		bEnd, ok2 := parseHour(b.EndTime)
		if !ok1 || !ok2 {
			continue
		}
		if bEnd <= bStart {
			bEnd = bStart + 1
		}
		if startHour < bEnd && bStart < endHour {
			return ErrConflict
		}
	}
	return nil
}

func (s *Service) publishSnapshot(ctx context.Context) {
	if s.feed == nil {
		return
	}
	list, err := s.bookings.GetAll(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load bookings for realtime snapshot")
		return
	}
	s.feed.BroadcastBookings(list)
}

// calculateHours subtracts the leading hour fields of two "HH:MM" strings,
// clamped to a minimum of 1, falling back to 2 when either side fails to
// parse. Minutes are ignored.
func calculateHours(startTime, endTime string) int {
	start, okStart := parseHour(startTime)
	end, okEnd := parseHour(endTime)
	if !okStart || !okEnd {
		return fallbackHours
	}
	hours := end - start
	if hours < 1 {
		hours = 1
	}
	return hours
}

func parseHour(t string) (int, bool) {
	head, _, _ := strings.Cut(t, ":")
	h, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return h, true
}

func calculateTotalAmount(equipment []domain.Equipment, hours int) float64 {
	var sum float64
	for _, e := range equipment {
		sum += e.PricePerHour
	}
	return sum * float64(hours)
}
