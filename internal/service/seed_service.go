package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/store"
)

// seedAdminID is the fixed id of the bootstrap admin, matching the
// well-known first-run principal.
const seedAdminID = "admin-001"

// SeedService creates the default admin principal on first run.
type SeedService struct {
	auth   *AuthService
	admins *repository.AdminRepository
}

func NewSeedService(auth *AuthService, admins *repository.AdminRepository) *SeedService {
	return &SeedService{auth: auth, admins: admins}
}

// EnsureDefaultAdmin creates the seed admin if no principal with the given
// email exists yet. It reports whether a new admin was created; an existing
// admin is a no-op, never an error.
func (s *SeedService) EnsureDefaultAdmin(ctx context.Context, email, name, password string) (bool, error) {
	_, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return false, fmt.Errorf("check existing admin: %w", err)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	admin := model.Admin{
		ID:           seedAdminID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, &admin); err != nil {
		// Lost a race against another seeder; the admin exists now.
		if errors.Is(err, store.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("create seed admin: %w", err)
	}
	return true, nil
}
