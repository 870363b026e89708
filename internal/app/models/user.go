package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID            int64     `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role          string    `json:"role" db:"role"`
	Permissions   []string  `json:"permissions,omitempty" db:"permissions"`
	InstitutionID *int64    `json:"institutionId,omitempty" db:"institution_id"` // nil until the user creates or joins an institution
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the JSON shape returned by auth endpoints.
// The password hash never leaves the server.
type PublicUser struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	InstitutionID *int64 `json:"institutionId,omitempty"`
}

// Public strips the credential fields from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		InstitutionID: u.InstitutionID,
	}
}
