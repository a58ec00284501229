package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"studiobook/internal/domain"
	"studiobook/internal/repository"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[strings.ToLower(u.Email)] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	cp := *u
	f.add(&cp)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, fullName, phone string) error {
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.FullName = fullName
	u.Phone = phone
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

type fakeConfig struct {
	cfg domain.SystemConfig
}

func (f *fakeConfig) GetSystemConfig(ctx context.Context) (domain.SystemConfig, error) {
	return f.cfg, nil
}

func newAuthService(cfg domain.SystemConfig) (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeTokens{}, &fakeConfig{cfg: cfg}, zerolog.Nop())
	return svc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &domain.User{
		ID:           "u-" + email,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Seeded User",
		Role:         domain.RoleClient,
		IsActive:     active,
	}
	repo.add(u)
	return u
}

func TestRegister(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())

	resp, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleClient, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.Empty(t, resp.User.PasswordHash)

	// The stored hash verifies against the submitted password.
	stored := repo.byEmail["jane@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	seedUser(t, repo, "jane@example.com", "secret123", true)

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Another Jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Closed(t *testing.T) {
	cfg := domain.DefaultSystemConfig()
	cfg.AllowNewRegistrations = false
	svc, _ := newAuthService(cfg)

	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrRegistrationsClosed)
}

func TestLogin(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	u := seedUser(t, repo, "jane@example.com", "secret123", true)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	seedUser(t, repo, "jane@example.com", "secret123", true)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(domain.DefaultSystemConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	seedUser(t, repo, "jane@example.com", "secret123", false)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestChangePassword(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	u := seedUser(t, repo, "jane@example.com", "secret123", true)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: u.Email, Password: "newsecret"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, LoginRequest{Email: u.Email, Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	u := seedUser(t, repo, "jane@example.com", "secret123", true)

	err := svc.ChangePassword(context.Background(), u.ID, ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newAuthService(domain.DefaultSystemConfig())
	u := seedUser(t, repo, "jane@example.com", "secret123", true)

	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{
		FullName: "Jane Updated",
		Phone:    "+1 555 0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Updated", got.FullName)
	assert.Equal(t, "+1 555 0100", got.Phone)
}
