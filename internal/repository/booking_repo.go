package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"studiobook/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ClientID    string    `gorm:"column:client_id;index"`
	ClientName  string    `gorm:"column:client_name"`
	Studio      string    `gorm:"column:studio;index"`
	Equipment   string    `gorm:"column:equipment;type:text"`
	Date        int64     `gorm:"column:date;index"`
	StartTime   string    `gorm:"column:start_time"`
	EndTime     string    `gorm:"column:end_time"`
	TotalHours  int       `gorm:"column:total_hours"`
	TotalAmount float64   `gorm:"column:total_amount"`
	Status      string    `gorm:"column:status;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// The equipment selection is stored as a JSON snapshot on the booking row so
// later catalog price edits never change an existing booking's amount.
func toBookingModel(b *domain.Booking) (bookingModel, error) {
	eq, err := json.Marshal(b.Equipment)
	if err != nil {
		return bookingModel{}, err
	}
	return bookingModel{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		Studio:      string(b.Studio),
		Equipment:   string(eq),
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TotalHours:  b.TotalHours,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}, nil
}

func toDomainBooking(m bookingModel) (*domain.Booking, error) {
	var eq []domain.Equipment
	if m.Equipment != "" {
		if err := json.Unmarshal([]byte(m.Equipment), &eq); err != nil {
			return nil, err
		}
	}
	return &domain.Booking{
		ID:          m.ID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Studio:      domain.Studio(m.Studio),
		Equipment:   eq,
		Date:        m.Date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		TotalHours:  m.TotalHours,
		TotalAmount: m.TotalAmount,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}, nil
}

func toDomainBookings(rows []bookingModel) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m, err := toBookingModel(b)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	return toDomainBooking(m)
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Order("date DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows)
}

func (r *BookingRepository) GetByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows)
}

// GetActiveForStudioOnDay returns non-cancelled bookings for the studio whose
// date falls within [dayStart, dayEnd) epoch milliseconds.
func (r *BookingRepository) GetActiveForStudioOnDay(ctx context.Context, studio domain.Studio, dayStart, dayEnd int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("studio = ? AND date >= ? AND date < ? AND status <> ?",
			string(studio), dayStart, dayEnd, string(domain.BookingCancelled)).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClientStats aggregates the denormalized per-client counters from real rows.
type ClientStats struct {
	TotalBookings   int
	TotalSpent      float64
	LastBookingDate int64
}

func (r *BookingRepository) StatsForClient(ctx context.Context, clientID string) (ClientStats, error) {
	var row struct {
		Cnt  int64
		Sum  float64
		Last int64
	}
	q := `
SELECT COUNT(1) AS cnt,
       COALESCE(SUM(total_amount), 0) AS sum,
       COALESCE(MAX(date), 0) AS last
FROM bookings
WHERE client_id = ? AND status <> ?
`
	tx := r.db.WithContext(ctx).Raw(q, clientID, string(domain.BookingCancelled)).Scan(&row)
	if tx.Error != nil {
		return ClientStats{}, tx.Error
	}
	return ClientStats{
		TotalBookings:   int(row.Cnt),
		TotalSpent:      row.Sum,
		LastBookingDate: row.Last,
	}, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountSince(ctx context.Context, fromMs int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("date >= ?", fromMs).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountByStatusSince(ctx context.Context, status domain.BookingStatus, fromMs int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ? AND date >= ?", string(status), fromMs).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) TotalRevenue(ctx context.Context) (float64, error) {
	return r.revenue(ctx, 0)
}

func (r *BookingRepository) RevenueSince(ctx context.Context, fromMs int64) (float64, error) {
	return r.revenue(ctx, fromMs)
}

func (r *BookingRepository) revenue(ctx context.Context, fromMs int64) (float64, error) {
	var sum float64
	q := `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE date >= ?`
	tx := r.db.WithContext(ctx).Raw(q, fromMs).Scan(&sum)
	return sum, tx.Error
}

// AutoMigrate creates the bookings table.
func (r *BookingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&bookingModel{})
}
