package usecase

import (
	"context"

	"kurvalgom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput carries a new review. Range checks live at the delivery edge.
type CreatePostInput struct {
	Image      string
	Comment    string
	Rating     int
	Restaurant entity.Restaurant
}

// PostUsecase defines blog post operations. The acting user is always passed in.
type PostUsecase interface {
	CreatePost(ctx context.Context, actorID uuid.UUID, input CreatePostInput) (*entity.BlogPost, error)

	// UpdatePost merges the patch after checking ownership, within one transaction.
	UpdatePost(ctx context.Context, actorID, postID uuid.UUID, patch entity.PostPatch) (*entity.BlogPost, error)

	// DeletePost removes a post after checking ownership, within one transaction.
	DeletePost(ctx context.Context, actorID, postID uuid.UUID) error

	GetPost(ctx context.Context, postID uuid.UUID) (*entity.BlogPost, error)

	// ListAllPosts returns every post, newest first.
	ListAllPosts(ctx context.Context) ([]*entity.BlogPost, error)

	// ListPostsByOwner returns one user's posts, newest first.
	ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BlogPost, error)
}
