package model

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering listed on the services page.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price,omitempty"`
	Features    []string  `json:"features"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateServiceRequest is the payload for creating a service. Active is a
// pointer so an absent field defaults to true while an explicit false is
// honored. Updates are full replacements.
type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"image_url"`
	Active      *bool    `json:"active"`
}

func (r CreateServiceRequest) active() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

func (r CreateServiceRequest) features() []string {
	if r.Features == nil {
		return []string{}
	}
	return r.Features
}

// NewService builds a service with server-assigned fields.
func NewService(req CreateServiceRequest) Service {
	return Service{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.features(),
		ImageURL:    req.ImageURL,
		Active:      req.active(),
		CreatedAt:   time.Now().UTC(),
	}
}

// Fields returns the mutable fields as a replacement patch.
func (r CreateServiceRequest) Fields() map[string]any {
	return map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"price":       r.Price,
		"features":    r.features(),
		"image_url":   r.ImageURL,
		"active":      r.active(),
	}
}
