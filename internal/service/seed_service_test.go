package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/store"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	admins := repository.NewAdminRepository(store.NewMemory())
	auth := NewAuthService(testConfig())
	seeder := NewSeedService(auth, admins)

	created, err := seeder.EnsureDefaultAdmin(ctx, "admin@example.com", "Admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := admins.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin-001", admin.ID)
	assert.Equal(t, "Admin", admin.Name)
	assert.NoError(t, auth.CheckPassword(admin.PasswordHash, "admin123"))

	// Second run is a no-op, even with a different password.
	created, err = seeder.EnsureDefaultAdmin(ctx, "admin@example.com", "Admin", "different")
	require.NoError(t, err)
	assert.False(t, created)

	again, err := admins.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.PasswordHash, again.PasswordHash)
}
