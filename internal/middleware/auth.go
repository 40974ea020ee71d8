package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/service"
)

// ContextKeyAdmin is the Gin context key for the authenticated principal.
const ContextKeyAdmin = "admin"

// AdminFinder resolves an admin principal by email. Satisfied by
// repository.AdminRepository.
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// RequireAdmin validates the bearer token from the Authorization header,
// resolves the admin it names and injects the principal into the context.
// Any failure is a 401.
func RequireAdmin(authService *service.AuthService, admins AdminFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		admin, err := admins.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "User not found")
			return
		}

		admin.PasswordHash = ""
		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// GetAdmin retrieves the authenticated principal from the Gin context.
func GetAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := val.(*model.Admin)
	if !ok {
		return nil
	}
	return admin
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
