// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kurvalgom/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account and the session issued for it.
type AuthOutput struct {
	User    *entity.User
	Session *entity.Session
}

// AuthUsecase defines account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterUser creates an account. A taken username yields errors.ErrUsernameTaken
	// and leaves the existing account untouched.
	RegisterUser(ctx context.Context, input RegisterInput) (*entity.User, error)

	// AuthenticateUser checks credentials. An unknown user or a wrong password
	// is a negative result, not an error.
	AuthenticateUser(ctx context.Context, username, password string) (*entity.User, bool, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login signs in with credentials; a mismatch yields errors.ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout ends a session. Tokens are stateless, so it always succeeds.
	Logout(ctx context.Context, token string) error

	// CurrentIdentity decodes a session token without touching the store.
	CurrentIdentity(ctx context.Context, token string) (*entity.Identity, bool)
}
