package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studiobook/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	BookingID     string    `gorm:"column:booking_id;index"`
	ClientID      string    `gorm:"column:client_id;index"`
	ClientName    string    `gorm:"column:client_name"`
	Amount        float64   `gorm:"column:amount"`
	PaymentMethod string    `gorm:"column:payment_method"`
	Status        string    `gorm:"column:status"`
	TransactionID string    `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	ProcessedAt   int64     `gorm:"column:processed_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toPaymentModel(p *domain.Payment) paymentModel {
	return paymentModel{
		ID:            p.ID,
		BookingID:     p.BookingID,
		ClientID:      p.ClientID,
		ClientName:    p.ClientName,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
	}
}

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		ClientID:      m.ClientID,
		ClientName:    m.ClientName,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Status:        domain.PaymentStatus(m.Status),
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		ProcessedAt:   m.ProcessedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	return r.db.WithContext(ctx).Create(&m).Error
}

// Resolve records the settlement outcome for a pending payment.
func (r *PaymentRepository) Resolve(ctx context.Context, id string, status domain.PaymentStatus, processedAtMs int64) error {
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(status),
			"processed_at": processedAtMs,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) GetByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&paymentModel{})
}
