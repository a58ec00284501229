package settings

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type SettingsRepository interface {
	GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	SaveUserSettings(ctx context.Context, s *domain.UserSettings) error
	GetSystemConfig(ctx context.Context) (*domain.SystemConfig, error)
	SaveSystemConfig(ctx context.Context, cfg *domain.SystemConfig) error
}

// Service owns both the per-user preferences and the operational singleton.
// It is also the configuration provider the other modules read from.
type Service struct {
	repo SettingsRepository
	log  zerolog.Logger
}

func NewService(repo SettingsRepository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetSystemConfig falls back to the built-in defaults until an admin has
// saved a configuration document.
func (s *Service) GetSystemConfig(ctx context.Context) (domain.SystemConfig, error) {
	cfg, err := s.repo.GetSystemConfig(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSystemConfig(), nil
		}
		return domain.SystemConfig{}, err
	}
	return *cfg, nil
}

func (s *Service) SaveSystemConfig(ctx context.Context, cfg domain.SystemConfig) error {
	if cfg.MaxBookingHours < 1 || cfg.AdvanceBookingDays < 1 || cfg.SecurityDeposit < 0 {
		return ErrValidation
	}
	if err := s.repo.SaveSystemConfig(ctx, &cfg); err != nil {
		return err
	}
	s.log.Info().
		Bool("maintenance_mode", cfg.MaintenanceMode).
		Bool("auto_confirm", cfg.AutoConfirmBookings).
		Msg("system config saved")
	return nil
}

func (s *Service) GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	us, err := s.repo.GetUserSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultUserSettings(userID), nil
		}
		return domain.UserSettings{}, err
	}
	return *us, nil
}

// UpdateUserSettings applies a partial update over the stored (or default)
// settings, so omitted fields keep their current values.
func (s *Service) UpdateUserSettings(ctx context.Context, userID string, req UpdateUserSettingsRequest) (domain.UserSettings, error) {
	current, err := s.GetUserSettings(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}

	if req.PreferredStudio != "" {
		studio := domain.Studio(req.PreferredStudio)
		if !studio.Valid() {
			return domain.UserSettings{}, ErrValidation
		}
		current.PreferredStudio = studio
	}
	if req.NotificationsEnabled != nil {
		current.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EmailNotifications != nil {
		current.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		current.SMSNotifications = *req.SMSNotifications
	}
	if req.MarketingEmails != nil {
		current.MarketingEmails = *req.MarketingEmails
	}
	if req.DarkMode != nil {
		current.DarkMode = *req.DarkMode
	}

	if err := s.repo.SaveUserSettings(ctx, &current); err != nil {
		return domain.UserSettings{}, err
	}
	return current, nil
}
