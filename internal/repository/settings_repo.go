package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studiobook/internal/domain"
)

// systemConfigKey is the fixed row id of the singleton configuration.
const systemConfigKey = "main"

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type userSettingsModel struct {
	UserID               string    `gorm:"column:user_id;primaryKey"`
	PreferredStudio      string    `gorm:"column:preferred_studio"`
	NotificationsEnabled bool      `gorm:"column:notifications_enabled"`
	EmailNotifications   bool      `gorm:"column:email_notifications"`
	SMSNotifications     bool      `gorm:"column:sms_notifications"`
	MarketingEmails      bool      `gorm:"column:marketing_emails"`
	DarkMode             bool      `gorm:"column:dark_mode"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (userSettingsModel) TableName() string { return "user_settings" }

// The system configuration is stored as a single JSON document, keeping the
// schemaless shape of the source collection.
type systemConfigModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Data      string    `gorm:"column:data;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (systemConfigModel) TableName() string { return "system_config" }

func (r *SettingsRepository) GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	var m userSettingsModel
	tx := r.db.WithContext(ctx).First(&m, "user_id = ?", userID)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	return &domain.UserSettings{
		UserID:               m.UserID,
		PreferredStudio:      domain.Studio(m.PreferredStudio),
		NotificationsEnabled: m.NotificationsEnabled,
		EmailNotifications:   m.EmailNotifications,
		SMSNotifications:     m.SMSNotifications,
		MarketingEmails:      m.MarketingEmails,
		DarkMode:             m.DarkMode,
		UpdatedAt:            m.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) SaveUserSettings(ctx context.Context, s *domain.UserSettings) error {
	m := userSettingsModel{
		UserID:               s.UserID,
		PreferredStudio:      string(s.PreferredStudio),
		NotificationsEnabled: s.NotificationsEnabled,
		EmailNotifications:   s.EmailNotifications,
		SMSNotifications:     s.SMSNotifications,
		MarketingEmails:      s.MarketingEmails,
		DarkMode:             s.DarkMode,
		UpdatedAt:            time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r *SettingsRepository) GetSystemConfig(ctx context.Context) (*domain.SystemConfig, error) {
	var m systemConfigModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", systemConfigKey)
	if tx.Error != nil {
		return nil, translateNotFound(tx.Error)
	}
	var cfg domain.SystemConfig
	if err := json.Unmarshal([]byte(m.Data), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SettingsRepository) SaveSystemConfig(ctx context.Context, cfg *domain.SystemConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	m := systemConfigModel{
		ID:        systemConfigKey,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r *SettingsRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&userSettingsModel{}, &systemConfigModel{})
}
