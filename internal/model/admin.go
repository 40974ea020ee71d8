package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single administrative principal. PasswordHash is persisted
// with the document but stripped from every outward response.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminProfile is the outward representation of an admin principal.
type AdminProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile strips the password hash for responses.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// NewAdmin creates an admin with a fresh id and creation timestamp.
func NewAdmin(email, name, passwordHash string) Admin {
	return Admin{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// RegisterRequest is the payload for admin registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        AdminProfile `json:"user"`
}
