package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/response"
)

type StatsHandler struct {
	repo *repository.StatsRepository
}

func NewStatsHandler(repo *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Get godoc
// GET /api/stats
// Returns dashboard counts. Each count observes the store independently.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.repo.Collect(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, stats)
}
