package users

import "studiobook/internal/domain"

type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ClientView decorates a client with the loyalty fields derived from the
// recomputed booking stats.
type ClientView struct {
	domain.User
	Tier  domain.ClientTier `json:"tier"`
	IsVIP bool              `json:"is_vip"`
}
