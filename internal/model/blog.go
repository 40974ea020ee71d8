package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article with a publication flag and update tracking.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"image_url,omitempty"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBlogPostRequest is the payload for creating a blog post.
type CreateBlogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Excerpt   string `json:"excerpt" binding:"required"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Published bool   `json:"published"`
}

// UpdateBlogPostRequest is a partial update: only present fields overwrite.
type UpdateBlogPostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	ImageURL  *string `json:"image_url"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
}

// NewBlogPost builds a blog post with server-assigned fields.
func NewBlogPost(req CreateBlogPostRequest) BlogPost {
	now := time.Now().UTC()
	return BlogPost{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		Author:    req.Author,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Fields returns only the present fields as a merge patch, always
// refreshing updated_at.
func (r UpdateBlogPostRequest) Fields() map[string]any {
	fields := map[string]any{
		"updated_at": time.Now().UTC(),
	}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.Excerpt != nil {
		fields["excerpt"] = *r.Excerpt
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Author != nil {
		fields["author"] = *r.Author
	}
	if r.Published != nil {
		fields["published"] = *r.Published
	}
	return fields
}
