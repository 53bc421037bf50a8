package repository

import (
	"context"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a blog post does not exist.
var ErrPostNotFound = errors.New("blog post not found")

// BlogPostRepository defines persistence operations for blog posts.
type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error

	// FindByID retrieves a post. With forUpdate set the row is locked until the
	// surrounding transaction ends, on dialects that support row locks.
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.BlogPost, error)

	// FindAll returns every post in store order.
	FindAll(ctx context.Context) ([]*entity.BlogPost, error)

	// FindByOwner returns the posts written by one user.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.BlogPost, error)

	// Update writes the mutable fields of an existing post.
	Update(ctx context.Context, post *entity.BlogPost) error

	Delete(ctx context.Context, id uuid.UUID) error
}
