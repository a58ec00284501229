package repository

import (
	"context"

	"gorm.io/gorm"

	"studiobook/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	Name           string  `gorm:"column:name;index"`
	Category       string  `gorm:"column:category"`
	Description    string  `gorm:"column:description"`
	PricePerHour   float64 `gorm:"column:price_per_hour"`
	IsAvailable    bool    `gorm:"column:is_available"`
	MaintenanceDue int64   `gorm:"column:maintenance_due"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Description:    e.Description,
		PricePerHour:   e.PricePerHour,
		IsAvailable:    e.IsAvailable,
		MaintenanceDue: e.MaintenanceDue,
	}
}

func toDomainEquipment(m equipmentModel) domain.Equipment {
	return domain.Equipment{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		Description:    m.Description,
		PricePerHour:   m.PricePerHour,
		IsAvailable:    m.IsAvailable,
		MaintenanceDue: m.MaintenanceDue,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":            m.Name,
		"category":        m.Category,
		"description":     m.Description,
		"price_per_hour":  m.PricePerHour,
		"is_available":    m.IsAvailable,
		"maintenance_due": m.MaintenanceDue,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	e := toDomainEquipment(m)
	return &e, nil
}

func (r *EquipmentRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Equipment, error) {
	if len(ids) == 0 {
		return []domain.Equipment{}, nil
	}
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) SetMaintenanceDue(ctx context.Context, id string, dueMs int64) error {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("maintenance_due", dueMs)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&equipmentModel{})
}
