package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds accepted at the delivery layer.
const (
	MinRating = 0
	MaxRating = 5
)

// BlogPost is a user review of a restaurant.
// Restaurant is a denormalized snapshot taken when the post was written.
type BlogPost struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"` // Owner; immutable after creation.
	Image      string     `json:"image"`   // Inline data URL, may be empty.
	Comment    string     `json:"comment"`
	Rating     int        `json:"rating"`
	Restaurant Restaurant `json:"restaurant"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"` // Set on every successful update.
}

// IsOwnedBy reports whether the post belongs to the given user.
func (p *BlogPost) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// PostPatch carries the mutable fields of a post. Nil fields are left unchanged.
type PostPatch struct {
	Image   *string
	Comment *string
	Rating  *int
}

// Apply merges the patch into the post.
func (p PostPatch) Apply(post *BlogPost) {
	if p.Image != nil {
		post.Image = *p.Image
	}
	if p.Comment != nil {
		post.Comment = *p.Comment
	}
	if p.Rating != nil {
		post.Rating = *p.Rating
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p PostPatch) IsEmpty() bool {
	return p.Image == nil && p.Comment == nil && p.Rating == nil
}
