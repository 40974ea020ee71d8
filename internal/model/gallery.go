package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a single image in the public gallery.
type GalleryImage struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGalleryImageRequest is the payload for creating a gallery image.
// Updates are full replacements.
type CreateGalleryImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
	Category string `json:"category" binding:"required"`
}

// NewGalleryImage builds a gallery image with server-assigned fields.
func NewGalleryImage(req CreateGalleryImageRequest) GalleryImage {
	return GalleryImage{
		ID:        uuid.New().String(),
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Category:  req.Category,
		CreatedAt: time.Now().UTC(),
	}
}

// Fields returns the mutable fields as a replacement patch.
func (r CreateGalleryImageRequest) Fields() map[string]any {
	return map[string]any{
		"image_url": r.ImageURL,
		"caption":   r.Caption,
		"category":  r.Category,
	}
}
