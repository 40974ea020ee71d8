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

type ServiceHandler struct {
	repo *repository.ServiceRepository
}

func NewServiceHandler(repo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// Create godoc
// POST /api/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req model.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := model.NewService(req)
	if err := h.repo.Create(c.Request.Context(), &svc); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// List godoc
// GET /api/services?active=...
func (h *ServiceHandler) List(c *gin.Context) {
	filter := store.Filter{}
	active, present, ok := boolQuery(c, "active")
	if !ok {
		return
	}
	if present {
		filter["active"] = active
	}

	services, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get godoc
// GET /api/services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Update godoc
// PUT /api/services/:id
// Full replacement of the mutable fields.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req model.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete godoc
// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
