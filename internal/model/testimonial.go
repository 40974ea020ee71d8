package model

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client quote with a rating.
type Testimonial struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateTestimonialRequest is the payload for creating a testimonial.
// Rating is a pointer so presence is required but zero is representable.
// Updates are full replacements.
type CreateTestimonialRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     *int   `json:"rating" binding:"required"`
	ImageURL   string `json:"image_url"`
}

// NewTestimonial builds a testimonial with server-assigned fields.
func NewTestimonial(req CreateTestimonialRequest) Testimonial {
	return Testimonial{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Content:    req.Content,
		Rating:     *req.Rating,
		ImageURL:   req.ImageURL,
		CreatedAt:  time.Now().UTC(),
	}
}

// Fields returns the mutable fields as a replacement patch.
func (r CreateTestimonialRequest) Fields() map[string]any {
	return map[string]any{
		"client_name": r.ClientName,
		"content":     r.Content,
		"rating":      *r.Rating,
		"image_url":   r.ImageURL,
	}
}
