package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkstudio/site-backend/internal/config"
	"github.com/tkstudio/site-backend/internal/handler"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/router"
	"github.com/tkstudio/site-backend/internal/service"
	"github.com/tkstudio/site-backend/internal/store"
	"github.com/tkstudio/site-backend/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

var setupOnce sync.Once

// newTestAPI wires the full router against an in-memory store.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validator.Setup()
	})

	cfg := &config.Config{
		GinMode:    gin.TestMode,
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	docs := store.NewMemory()
	adminRepo := repository.NewAdminRepository(docs)
	authService := service.NewAuthService(cfg)
	log := zerolog.Nop()

	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService, adminRepo),
		Portfolio:   handler.NewPortfolioHandler(repository.NewPortfolioRepository(docs)),
		Gallery:     handler.NewGalleryHandler(repository.NewGalleryRepository(docs)),
		Service:     handler.NewServiceHandler(repository.NewServiceRepository(docs)),
		Team:        handler.NewTeamHandler(repository.NewTeamRepository(docs)),
		Testimonial: handler.NewTestimonialHandler(repository.NewTestimonialRepository(docs)),
		Blog:        handler.NewBlogHandler(repository.NewBlogRepository(docs)),
		Inquiry:     handler.NewInquiryHandler(repository.NewInquiryRepository(docs), nil, log),
		Stats:       handler.NewStatsHandler(repository.NewStatsRepository(docs)),
	}

	return router.SetupRouter(authService, adminRepo, handlers, nil, cfg)
}

// doJSON performs a request and decodes the response body into a generic map
// or slice, depending on the payload.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func doJSONList(t *testing.T, r *gin.Engine, path, token string) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded []map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func registerAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"name":     "Admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthFlow(t *testing.T) {
	r := newTestAPI(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"name":     "Admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bearer", body["token_type"])
	token := body["access_token"].(string)

	user := body["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", user["email"])
	assert.NotContains(t, user, "password")

	// Same principal via /auth/me.
	w, me := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@example.com", me["email"])
	assert.Equal(t, "Admin", me["name"])
	assert.NotContains(t, me, "password")

	// Login round trip.
	w, login := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, login["access_token"])

	// Duplicate registration is rejected.
	w, dup := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "admin@example.com",
		"name":     "Other",
		"password": "other123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", dup["detail"])
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	r := newTestAPI(t)
	registerAdmin(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", body["detail"])

	w, body = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", body["detail"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestAPI(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/portfolio"},
		{http.MethodPut, "/api/portfolio/some-id"},
		{http.MethodDelete, "/api/portfolio/some-id"},
		{http.MethodPost, "/api/blog"},
		{http.MethodGet, "/api/inquiries"},
		{http.MethodPatch, "/api/inquiries/some-id/status"},
		{http.MethodGet, "/api/stats"},
	}
	for _, tc := range cases {
		w, _ := doJSON(t, r, tc.method, tc.path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	r := newTestAPI(t)

	for _, path := range []string{
		"/api/portfolio", "/api/gallery", "/api/services",
		"/api/team", "/api/testimonials", "/api/blog",
	} {
		w, items := doJSONList(t, r, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, items, path)
	}
}

func TestPortfolioCRUD(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	w, created := doJSON(t, r, http.MethodPost, "/api/portfolio", token, gin.H{
		"title":       "Summer Gala",
		"description": "Corporate event styling",
		"image_url":   "https://cdn.example.com/gala.jpg",
		"category":    "corporate",
		"featured":    true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Summer Gala", created["title"])
	assert.Equal(t, true, created["featured"])
	assert.NotEmpty(t, created["created_at"])

	// Read back.
	w, got := doJSON(t, r, http.MethodGet, "/api/portfolio/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created["title"], got["title"])
	assert.Equal(t, created["image_url"], got["image_url"])
	assert.Equal(t, created["created_at"], got["created_at"])

	// Full replacement update.
	w, updated := doJSON(t, r, http.MethodPut, "/api/portfolio/"+id, token, gin.H{
		"title":       "Winter Gala",
		"description": "Updated styling",
		"image_url":   "https://cdn.example.com/winter.jpg",
		"category":    "corporate",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Winter Gala", updated["title"])
	assert.Equal(t, false, updated["featured"]) // replaced, not merged
	assert.Equal(t, id, updated["id"])

	// Delete.
	w, msg := doJSON(t, r, http.MethodDelete, "/api/portfolio/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item deleted successfully", msg["message"])

	// Gone now.
	w, body := doJSON(t, r, http.MethodGet, "/api/portfolio/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", body["detail"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/portfolio/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPortfolioFilters(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	for _, item := range []gin.H{
		{"title": "A", "description": "d", "image_url": "u", "category": "wedding", "featured": true},
		{"title": "B", "description": "d", "image_url": "u", "category": "corporate", "featured": false},
	} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/portfolio", token, item)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, items := doJSONList(t, r, "/api/portfolio?featured=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0]["title"])

	w, items = doJSONList(t, r, "/api/portfolio?category=corporate", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0]["title"])

	w, items = doJSONList(t, r, "/api/portfolio?category=birthday", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, items)

	w, _ = doJSONList(t, r, "/api/portfolio?featured=banana", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceDefaults(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	// No active flag and no features supplied.
	w, created := doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"title":       "Full Planning",
		"description": "End to end event planning",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, created["active"])
	features, ok := created["features"].([]any)
	require.True(t, ok, "features should be a list, got %T", created["features"])
	assert.Empty(t, features)

	// Explicit active=false sticks.
	w, created = doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"title":       "Legacy Package",
		"description": "No longer offered",
		"active":      false,
		"features":    []string{"venue", "catering"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, created["active"])

	w, items := doJSONList(t, r, "/api/services?active=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, "Full Planning", items[0]["title"])
}

func TestTestimonialRequiresRating(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/api/testimonials", token, gin.H{
		"client_name": "Jane",
		"content":     "Wonderful event",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Validation failed", body["detail"])
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "rating")

	// Zero is an explicit rating, not an absent one.
	w, created := doJSON(t, r, http.MethodPost, "/api/testimonials", token, gin.H{
		"client_name": "Jane",
		"content":     "Wonderful event",
		"rating":      0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(0), created["rating"])
}

func TestBlogPartialUpdate(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	w, created := doJSON(t, r, http.MethodPost, "/api/blog", token, gin.H{
		"title":    "Planning 101",
		"content":  "Long form content",
		"excerpt":  "Short intro",
		"category": "guides",
		"author":   "Admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := created["id"].(string)
	assert.Equal(t, false, created["published"])

	// Only flip the published flag; everything else must survive.
	w, updated := doJSON(t, r, http.MethodPut, "/api/blog/"+id, token, gin.H{
		"published": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, updated["published"])
	assert.Equal(t, "Planning 101", updated["title"])
	assert.Equal(t, "Long form content", updated["content"])
	assert.Equal(t, created["created_at"], updated["created_at"])
	assert.NotEqual(t, created["updated_at"], updated["updated_at"])

	w, items := doJSONList(t, r, "/api/blog?published=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["id"])

	w, body := doJSON(t, r, http.MethodPut, "/api/blog/missing-id", token, gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", body["detail"])
}

func TestInquiryLifecycle(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	payload := gin.H{
		"first_name":              "Ava",
		"last_name":               "Stone",
		"email":                   "ava@example.com",
		"phone":                   "+1 555 0100",
		"country":                 "US",
		"event_details":           "Garden wedding for 80 guests",
		"venue_address":           "12 Rose Lane",
		"number_of_guests":        "80",
		"additional_requirements": "Vegan menu",
		"date":                    "2026-10-10",
		"time":                    "16:00",
		"how_did_you_hear":        "Instagram",
	}

	// Creation is public.
	w, created := doJSON(t, r, http.MethodPost, "/api/inquiries", "", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := created["id"].(string)
	assert.Equal(t, "new", created["status"])
	assert.Equal(t, "Ava", created["first_name"])

	// Listing is admin only.
	w, items := doJSONList(t, r, "/api/inquiries", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)

	w, items = doJSONList(t, r, "/api/inquiries?status=new", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, items, 1)

	// Status transition.
	w, msg := doJSON(t, r, http.MethodPatch, "/api/inquiries/"+id+"/status", token, gin.H{
		"status": "contacted",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Status updated successfully", msg["message"])

	w, got := doJSON(t, r, http.MethodGet, "/api/inquiries/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contacted", got["status"])

	w, items = doJSONList(t, r, "/api/inquiries?status=new", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, items)

	// Delete.
	w, msg = doJSON(t, r, http.MethodDelete, "/api/inquiries/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Inquiry deleted successfully", msg["message"])

	w, body := doJSON(t, r, http.MethodGet, "/api/inquiries/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Inquiry not found", body["detail"])
}

func TestDeleteMissingPerEntity(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	cases := []struct {
		path   string
		detail string
	}{
		{"/api/portfolio/nope", "Item not found"},
		{"/api/gallery/nope", "Image not found"},
		{"/api/services/nope", "Service not found"},
		{"/api/team/nope", "Member not found"},
		{"/api/testimonials/nope", "Testimonial not found"},
		{"/api/blog/nope", "Post not found"},
		{"/api/inquiries/nope", "Inquiry not found"},
	}
	for _, tc := range cases {
		w, body := doJSON(t, r, http.MethodDelete, tc.path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
		assert.Equal(t, tc.detail, body["detail"], tc.path)
	}
}

func TestStats(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/portfolio", token, gin.H{
			"title": "P", "description": "d", "image_url": "u", "category": "c",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/gallery", token, gin.H{
		"image_url": "u", "category": "c",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, created := doJSON(t, r, http.MethodPost, "/api/inquiries", "", gin.H{
		"first_name": "A", "last_name": "B", "email": "a@b.com", "phone": "1",
		"country": "US", "event_details": "d", "venue_address": "v",
		"number_of_guests": "10", "additional_requirements": "n",
		"date": "2026-09-01", "time": "12:00", "how_did_you_hear": "web",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, stats := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(2), stats["portfolio_items"])
	assert.Equal(t, float64(1), stats["gallery_images"])
	assert.Equal(t, float64(0), stats["services"])
	assert.Equal(t, float64(1), stats["total_inquiries"])
	assert.Equal(t, float64(1), stats["new_inquiries"])
	assert.Equal(t, float64(0), stats["blog_posts"])

	// Contacted inquiries drop out of the new count only.
	id := created["id"].(string)
	w, _ = doJSON(t, r, http.MethodPatch, "/api/inquiries/"+id+"/status", token, gin.H{"status": "contacted"})
	require.Equal(t, http.StatusOK, w.Code)

	w, stats = doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), stats["total_inquiries"])
	assert.Equal(t, float64(0), stats["new_inquiries"])
}

func TestMalformedAndInvalidPayloads(t *testing.T) {
	r := newTestAPI(t)
	token := registerAdmin(t, r)

	// Broken JSON.
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request payload", body["detail"])

	// Missing required fields.
	w2, body2 := doJSON(t, r, http.MethodPost, "/api/portfolio", token, gin.H{
		"title": "only a title",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w2.Code)
	assert.Equal(t, "Validation failed", body2["detail"])
	fields := body2["fields"].(map[string]any)
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "image_url")
	assert.Contains(t, fields, "category")

	// Bad email on inquiry creation.
	w3, body3 := doJSON(t, r, http.MethodPost, "/api/inquiries", "", gin.H{
		"first_name": "A", "last_name": "B", "email": "not-an-email", "phone": "1",
		"country": "US", "event_details": "d", "venue_address": "v",
		"number_of_guests": "10", "additional_requirements": "n",
		"date": "2026-09-01", "time": "12:00", "how_did_you_hear": "web",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w3.Code)
	fields3 := body3["fields"].(map[string]any)
	assert.Contains(t, fields3, "email")
}

func TestHealth(t *testing.T) {
	r := newTestAPI(t)
	w, body := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}
