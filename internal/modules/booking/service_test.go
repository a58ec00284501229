package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	statuses map[string]domain.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]*domain.Booking),
		statuses: make(map[string]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetActiveForStudioOnDay(ctx context.Context, studio domain.Studio, dayStart, dayEnd int64) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.Studio == studio && b.Date >= dayStart && b.Date < dayEnd && b.Status != domain.BookingCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	f.statuses[id] = status
	return nil
}

type fakeEquipmentReader struct {
	items map[string]domain.Equipment
}

func (f *fakeEquipmentReader) GetByIDs(ctx context.Context, ids []string) ([]domain.Equipment, error) {
	var out []domain.Equipment
	for _, id := range ids {
		if e, ok := f.items[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeUserReader struct {
	users map[string]*domain.User
}

func (f *fakeUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type fakeConfigProvider struct {
	cfg domain.SystemConfig
}

func (f *fakeConfigProvider) GetSystemConfig(ctx context.Context) (domain.SystemConfig, error) {
	return f.cfg, nil
}

func newTestService(cfg domain.SystemConfig) (*Service, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	equipment := &fakeEquipmentReader{items: map[string]domain.Equipment{
		"eq-1": {ID: "eq-1", Name: "Canon EOS R5", PricePerHour: 50, IsAvailable: true},
		"eq-2": {ID: "eq-2", Name: "Sony FX6", PricePerHour: 75, IsAvailable: true},
	}}
	users := &fakeUserReader{users: map[string]*domain.User{
		"client-1": {ID: "client-1", FullName: "Jane Doe", Role: domain.RoleClient, IsActive: true},
	}}
	svc := NewService(repo, equipment, users, &fakeConfigProvider{cfg: cfg}, nil, zerolog.Nop())
	return svc, repo
}

func TestCalculateHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"10:00", "14:00", 4},
		{"9:00", "10:00", 1},
		{"10:00", "10:00", 1},
		{"14:00", "10:00", 1},
		{"10:30", "14:15", 4},
		{"bad", "14:00", 2},
		{"10:00", "", 2},
		{"", "", 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, calculateHours(c.start, c.end), "calculateHours(%q, %q)", c.start, c.end)
	}
}

func TestCreateBooking_FreezesTotalAmount(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:     "client-1",
		Studio:       "STUDIO_A",
		StartTime:    "10:00",
		EndTime:      "14:00",
		EquipmentIDs: []string{"eq-1", "eq-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, b.TotalHours)
	assert.Equal(t, (50.0+75.0)*4, b.TotalAmount)
	assert.Equal(t, "Jane Doe", b.ClientName)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotEmpty(t, b.ID)
	assert.Len(t, b.Equipment, 2)
}

func TestCreateBooking_AutoConfirm(t *testing.T) {
	cfg := domain.DefaultSystemConfig()
	cfg.AutoConfirmBookings = true
	svc, _ := newTestService(cfg)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_B",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestCreateBooking_DisabledStudio(t *testing.T) {
	cfg := domain.DefaultSystemConfig()
	cfg.StudioCEnabled = false
	svc, _ := newTestService(cfg)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_C",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrStudioDisabled)
}

func TestCreateBooking_MaintenanceMode(t *testing.T) {
	cfg := domain.DefaultSystemConfig()
	cfg.MaintenanceMode = true
	svc, _ := newTestService(cfg)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrStudioDisabled)
}

func TestCreateBooking_ExceedsMaxHours(t *testing.T) {
	cfg := domain.DefaultSystemConfig()
	cfg.MaxBookingHours = 3
	svc, _ := newTestService(cfg)

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_UnknownEquipment(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())

	_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientID:     "client-1",
		Studio:       "STUDIO_A",
		StartTime:    "10:00",
		EndTime:      "12:00",
		EquipmentIDs: []string{"eq-1", "missing"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBooking_RejectsOverlap(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	require.NoError(t, err)

	// Same day, same studio, overlapping window.
	_, err = svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		Date:      first.Date,
		StartTime: "12:00",
		EndTime:   "16:00",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// Adjacent window on the same day is fine.
	_, err = svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		Date:      first.Date,
		StartTime: "14:00",
		EndTime:   "16:00",
	})
	assert.NoError(t, err)

	// Other studio at the same time is fine too.
	_, err = svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_B",
		Date:      first.Date,
		StartTime: "12:00",
		EndTime:   "16:00",
	})
	assert.NoError(t, err)
}

func TestUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	svc, repo := newTestService(domain.DefaultSystemConfig())
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, b.ID, domain.BookingPending)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status)
	assert.Empty(t, repo.statuses, "storage must not be touched")
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	for _, next := range []domain.BookingStatus{
		domain.BookingConfirmed,
		domain.BookingInProgress,
		domain.BookingCompleted,
	} {
		got, err := svc.UpdateStatus(ctx, b.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}

	// COMPLETED is terminal.
	_, err = svc.UpdateStatus(ctx, b.ID, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_RejectsSkippingSteps(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, CreateBookingRequest{
		ClientID:  "client-1",
		Studio:    "STUDIO_A",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, b.ID, domain.BookingCompleted)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(domain.DefaultSystemConfig())

	_, err := svc.UpdateStatus(context.Background(), "nope", domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
