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

type PortfolioHandler struct {
	repo *repository.PortfolioRepository
}

func NewPortfolioHandler(repo *repository.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{repo: repo}
}

// Create godoc
// POST /api/portfolio
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req model.CreatePortfolioItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item := model.NewPortfolioItem(req)
	if err := h.repo.Create(c.Request.Context(), &item); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, item)
}

// List godoc
// GET /api/portfolio?category=...&featured=...
func (h *PortfolioHandler) List(c *gin.Context) {
	filter := store.Filter{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	featured, present, ok := boolQuery(c, "featured")
	if !ok {
		return
	}
	if present {
		filter["featured"] = featured
	}

	items, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// GET /api/portfolio/:id
func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update godoc
// PUT /api/portfolio/:id
// Full replacement of the mutable fields.
func (h *PortfolioHandler) Update(c *gin.Context) {
	var req model.CreatePortfolioItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// DELETE /api/portfolio/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Item not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
