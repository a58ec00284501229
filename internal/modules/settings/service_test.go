package settings

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type fakeSettingsRepo struct {
	userSettings map[string]*domain.UserSettings
	systemConfig *domain.SystemConfig
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{userSettings: make(map[string]*domain.UserSettings)}
}

func (f *fakeSettingsRepo) GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	s, ok := f.userSettings[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSettingsRepo) SaveUserSettings(ctx context.Context, s *domain.UserSettings) error {
	cp := *s
	f.userSettings[s.UserID] = &cp
	return nil
}

func (f *fakeSettingsRepo) GetSystemConfig(ctx context.Context) (*domain.SystemConfig, error) {
	if f.systemConfig == nil {
		return nil, repository.ErrNotFound
	}
	cp := *f.systemConfig
	return &cp, nil
}

func (f *fakeSettingsRepo) SaveSystemConfig(ctx context.Context, cfg *domain.SystemConfig) error {
	cp := *cfg
	f.systemConfig = &cp
	return nil
}

func TestGetSystemConfig_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), zerolog.Nop())

	cfg, err := svc.GetSystemConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSystemConfig(), cfg)
}

func TestSaveSystemConfig(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	cfg := domain.DefaultSystemConfig()
	cfg.MaxBookingHours = 6
	cfg.MaintenanceMode = true
	require.NoError(t, svc.SaveSystemConfig(ctx, cfg))

	got, err := svc.GetSystemConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, got.MaxBookingHours)
	assert.True(t, got.MaintenanceMode)
}

func TestSaveSystemConfig_RejectsNonsense(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), zerolog.Nop())

	cfg := domain.DefaultSystemConfig()
	cfg.MaxBookingHours = 0
	assert.ErrorIs(t, svc.SaveSystemConfig(context.Background(), cfg), ErrValidation)

	cfg = domain.DefaultSystemConfig()
	cfg.SecurityDeposit = -1
	assert.ErrorIs(t, svc.SaveSystemConfig(context.Background(), cfg), ErrValidation)
}

func TestGetUserSettings_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), zerolog.Nop())

	got, err := svc.GetUserSettings(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserSettings("u-1"), got)
	assert.True(t, got.NotificationsEnabled)
}

func TestUpdateUserSettings_PartialMerge(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), zerolog.Nop())
	ctx := context.Background()

	dark := true
	got, err := svc.UpdateUserSettings(ctx, "u-1", UpdateUserSettingsRequest{
		PreferredStudio: "STUDIO_B",
		DarkMode:        &dark,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StudioB, got.PreferredStudio)
	assert.True(t, got.DarkMode)
	// Untouched fields keep their defaults.
	assert.True(t, got.NotificationsEnabled)

	// A second partial update leaves earlier choices alone.
	off := false
	got, err = svc.UpdateUserSettings(ctx, "u-1", UpdateUserSettingsRequest{
		NotificationsEnabled: &off,
	})
	require.NoError(t, err)
	assert.False(t, got.NotificationsEnabled)
	assert.True(t, got.DarkMode)
	assert.Equal(t, domain.StudioB, got.PreferredStudio)
}

func TestUpdateUserSettings_BadStudio(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), zerolog.Nop())

	_, err := svc.UpdateUserSettings(context.Background(), "u-1", UpdateUserSettingsRequest{
		PreferredStudio: "STUDIO_Z",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
