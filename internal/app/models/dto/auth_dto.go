package dto

import "github.com/smartcampus/backend/internal/app/models"

// RegisterRequest is the payload for POST /api/auth/register.
// Role defaults to "admin" when omitted; registration normally happens
// through the onboarding wizard's admin step.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=3,max=255"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin teacher staff student"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// AuthResponse carries the public user plus a bearer token
type AuthResponse struct {
	User  *models.PublicUser `json:"user"`
	Token string             `json:"token"`
}

// MeResponse is returned by GET /api/auth/me
type MeResponse struct {
	User        *models.PublicUser  `json:"user"`
	Institution *models.Institution `json:"institution"` // null until the user belongs to one
}

// UpdateRoleRequest is the payload for PUT /api/users/:id/role
type UpdateRoleRequest struct {
	Role        string   `json:"role" binding:"required" validate:"required,oneof=admin teacher staff student"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,min=1"`
}
