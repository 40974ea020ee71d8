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

type GalleryHandler struct {
	repo *repository.GalleryRepository
}

func NewGalleryHandler(repo *repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

// Create godoc
// POST /api/gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	var req model.CreateGalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image := model.NewGalleryImage(req)
	if err := h.repo.Create(c.Request.Context(), &image); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, image)
}

// List godoc
// GET /api/gallery?category=...
func (h *GalleryHandler) List(c *gin.Context) {
	filter := store.Filter{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	images, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, images)
}

// Get godoc
// GET /api/gallery/:id
func (h *GalleryHandler) Get(c *gin.Context) {
	image, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Image not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, image)
}

// Update godoc
// PUT /api/gallery/:id
// Full replacement of the mutable fields.
func (h *GalleryHandler) Update(c *gin.Context) {
	var req model.CreateGalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Image not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, image)
}

// Delete godoc
// DELETE /api/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Image not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
