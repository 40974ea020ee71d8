package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tkstudio/site-backend/internal/mailer"
	"github.com/tkstudio/site-backend/internal/model"
	"github.com/tkstudio/site-backend/internal/repository"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/store"
)

// notifyTimeout bounds a single notification dispatch.
const notifyTimeout = 30 * time.Second

// InquiryHandler handles the public inquiry form and its admin management
// endpoints. mailer may be nil when outbound mail is not configured.
type InquiryHandler struct {
	repo   *repository.InquiryRepository
	mailer mailer.Mailer
	log    zerolog.Logger
}

func NewInquiryHandler(repo *repository.InquiryRepository, m mailer.Mailer, log zerolog.Logger) *InquiryHandler {
	return &InquiryHandler{
		repo:   repo,
		mailer: m,
		log:    log.With().Str("component", "inquiry_handler").Logger(),
	}
}

// Create godoc
// POST /api/inquiries (public)
// Persists the inquiry, then dispatches the admin notification off the
// request path. Notification failures are logged and never surface.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req model.CreateInquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	inq := model.NewInquiry(req)
	if err := h.repo.Create(c.Request.Context(), &inq); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.mailer != nil {
		notify := inq
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := h.mailer.SendInquiryNotification(ctx, &notify); err != nil {
				h.log.Error().Err(err).Str("inquiry_id", notify.ID).Msg("Failed to send inquiry notification")
			}
		}()
	}

	c.JSON(http.StatusOK, inq)
}

// List godoc
// GET /api/inquiries?status=...
func (h *InquiryHandler) List(c *gin.Context) {
	filter := store.Filter{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	inquiries, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// Get godoc
// GET /api/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	inq, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Inquiry not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, inq)
}

// UpdateStatus godoc
// PATCH /api/inquiries/:id/status
// Sets status to an arbitrary caller-supplied string; no state machine.
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateInquiryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.repo.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Inquiry not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// Delete godoc
// DELETE /api/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNoDocuments) {
			response.Fail(c, http.StatusNotFound, "Inquiry not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
