package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/store"
)

type TestimonialHandler struct {
	repo *repository.TestimonialRepository
}

func NewTestimonialHandler(repo *repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

// Create godoc
// POST /api/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req model.CreateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	tm := model.NewTestimonial(req)
	if err := h.repo.Create(c.Request.Context(), &tm); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, tm)
}

// List godoc
// GET /api/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Get godoc
// GET /api/testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	tm, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, tm)
}

// Update godoc
// PUT /api/testimonials/:id
// Full replacement of the mutable fields.
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req model.CreateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	tm, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, tm)
}

// Delete godoc
// DELETE /api/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
