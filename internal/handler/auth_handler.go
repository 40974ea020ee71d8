package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/middleware"
	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/service"
	"github.com/tkstudio/site-backend/internal/store"
)

// AuthHandler handles registration, login and the authenticated profile.
type AuthHandler struct {
	authService *service.AuthService
	admins      *repository.AdminRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, admins *repository.AdminRepository) *AuthHandler {
	return &AuthHandler{authService: authService, admins: admins}
}

// Register godoc
// POST /api/auth/register
// Creates an admin principal and returns a session token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	_, err := h.admins.GetByEmail(ctx, req.Email)
	if err == nil {
		response.Fail(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	admin := model.NewAdmin(req.Email, req.Name, hash)
	if err := h.admins.Create(ctx, &admin); err != nil {
		// A concurrent registration may win the existence check; the
		// store's uniqueness constraint resolves the race.
		if errors.Is(err, store.ErrDuplicate) {
			response.Fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(admin.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        admin.Profile(),
	})
}

// Login godoc
// POST /api/auth/login
// Validates email + password and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.admins.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(admin.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        admin.Profile(),
	})
}

// Me godoc
// GET /api/auth/me
// Returns the authenticated principal.
func (h *AuthHandler) Me(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, admin.Profile())
}
