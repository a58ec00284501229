package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"studiobook/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Email           string    `gorm:"column:email;uniqueIndex"`
	PasswordHash    string    `gorm:"column:password_hash"`
	FullName        string    `gorm:"column:full_name;index"`
	Phone           string    `gorm:"column:phone"`
	Role            string    `gorm:"column:role;index"`
	IsActive        bool      `gorm:"column:is_active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	TotalBookings   int       `gorm:"column:total_bookings"`
	TotalSpent      float64   `gorm:"column:total_spent"`
	LastBookingDate int64     `gorm:"column:last_booking_date"`
	AverageRating   float64   `gorm:"column:average_rating"`
	Notes           string    `gorm:"column:notes"`
}

func (userModel) TableName() string { return "users" }

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:              u.ID,
		Email:           strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash:    u.PasswordHash,
		FullName:        u.FullName,
		Phone:           u.Phone,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
		TotalBookings:   u.TotalBookings,
		TotalSpent:      u.TotalSpent,
		LastBookingDate: u.LastBookingDate,
		AverageRating:   u.AverageRating,
		Notes:           u.Notes,
	}
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		FullName:        m.FullName,
		Phone:           m.Phone,
		Role:            domain.UserRole(m.Role),
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		TotalBookings:   m.TotalBookings,
		TotalSpent:      m.TotalSpent,
		LastBookingDate: m.LastBookingDate,
		AverageRating:   m.AverageRating,
		Notes:           m.Notes,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	u.Email = m.Email
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).Order("full_name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) GetByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("full_name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	return r.updateField(ctx, id, "role", string(role))
}

func (r *UserRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	return r.updateField(ctx, id, "is_active", active)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.updateField(ctx, id, "password_hash", passwordHash)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, fullName, phone string) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"full_name": fullName, "phone": phone})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStats writes the recomputed denormalized counters back to the row.
func (r *UserRepository) UpdateStats(ctx context.Context, id string, stats ClientStats) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_bookings":    stats.TotalBookings,
			"total_spent":       stats.TotalSpent,
			"last_booking_date": stats.LastBookingDate,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("role = ?", string(role)).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *UserRepository) updateField(ctx context.Context, id, field string, value any) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update(field, value)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&userModel{})
}
