package auth

import (
	"context"

	"studiobook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, fullName, phone string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type TokenService interface {
	GenerateToken(userID, role string) (string, error)
}

type ConfigProvider interface {
	GetSystemConfig(ctx context.Context) (domain.SystemConfig, error)
}
