// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	// A username collision yields domain errors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the first user registered with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
