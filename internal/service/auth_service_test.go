package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkstudio/site-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   30 * 24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	s := NewAuthService(testConfig())

	hash, err := s.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, s.CheckPassword(hash, "admin123"))
	assert.ErrorIs(t, s.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	s := NewAuthService(testConfig())
	assert.ErrorIs(t, s.CheckPassword("not-a-bcrypt-hash", "admin123"), ErrInvalidCredentials)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := NewAuthService(testConfig())

	token, err := s.GenerateToken("admin@example.com")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Hour // Issued already past expiry.
	s := NewAuthService(cfg)

	token, err := s.GenerateToken("admin@example.com")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewAuthService(testConfig())
	token, err := issuer.GenerateToken("admin@example.com")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "different-secret"
	_, err = NewAuthService(other).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Tampered(t *testing.T) {
	s := NewAuthService(testConfig())
	token, err := s.GenerateToken("admin@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = s.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	s := NewAuthService(testConfig())

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := s.ValidateToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q must be rejected", tokenStr)
	}
}
