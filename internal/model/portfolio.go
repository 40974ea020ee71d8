package model

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem is a showcased piece of work.
type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePortfolioItemRequest is the payload for creating a portfolio item.
// Updates reuse it: portfolio updates are full replacements.
type CreatePortfolioItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Featured    bool   `json:"featured"`
}

// NewPortfolioItem builds a portfolio item with server-assigned id and
// creation timestamp.
func NewPortfolioItem(req CreatePortfolioItemRequest) PortfolioItem {
	return PortfolioItem{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Featured:    req.Featured,
		CreatedAt:   time.Now().UTC(),
	}
}

// Fields returns the mutable fields as a replacement patch.
func (r CreatePortfolioItemRequest) Fields() map[string]any {
	return map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"image_url":   r.ImageURL,
		"category":    r.Category,
		"featured":    r.Featured,
	}
}
