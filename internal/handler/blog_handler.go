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

type BlogHandler struct {
	repo *repository.BlogRepository
}

func NewBlogHandler(repo *repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

// Create godoc
// POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreateBlogPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post := model.NewBlogPost(req)
	if err := h.repo.Create(c.Request.Context(), &post); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, post)
}

// List godoc
// GET /api/blog?published=...
func (h *BlogHandler) List(c *gin.Context) {
	filter := store.Filter{}
	published, present, ok := boolQuery(c, "published")
	if !ok {
		return
	}
	if present {
		filter["published"] = published
	}

	posts, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get godoc
// GET /api/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update godoc
// PUT /api/blog/:id
// Partial update: only present fields overwrite; updated_at always
// refreshes.
func (h *BlogHandler) Update(c *gin.Context) {
	var req model.UpdateBlogPostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete godoc
// DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Post not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
