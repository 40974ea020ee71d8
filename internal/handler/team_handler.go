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

type TeamHandler struct {
	repo *repository.TeamRepository
}

func NewTeamHandler(repo *repository.TeamRepository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// Create godoc
// POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var req model.CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member := model.NewTeamMember(req)
	if err := h.repo.Create(c.Request.Context(), &member); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, member)
}

// List godoc
// GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, members)
}

// Get godoc
// GET /api/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	member, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Member not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, member)
}

// Update godoc
// PUT /api/team/:id
// Full replacement of the mutable fields.
func (h *TeamHandler) Update(c *gin.Context) {
	var req model.CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Member not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, member)
}

// Delete godoc
// DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Member not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
