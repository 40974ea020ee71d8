package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person shown on the team page.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTeamMemberRequest is the payload for creating a team member.
// Updates are full replacements.
type CreateTeamMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Bio      string `json:"bio" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
}

// NewTeamMember builds a team member with server-assigned fields.
func NewTeamMember(req CreateTeamMemberRequest) TeamMember {
	return TeamMember{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
}

// Fields returns the mutable fields as a replacement patch.
func (r CreateTeamMemberRequest) Fields() map[string]any {
	return map[string]any{
		"name":      r.Name,
		"role":      r.Role,
		"bio":       r.Bio,
		"image_url": r.ImageURL,
	}
}
