package service

import (
	"time"

	"kurvalgom/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
// The subject claim carries the user ID.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Validation is purely cryptographic and never consults the store.
type TokenService interface {
	// Issue creates a signed token for the user and returns it with the identity it encodes.
	Issue(user *entity.User) (token string, identity *entity.Identity, err error)

	// Validate decodes a token. Malformed, wrongly signed or expired tokens yield (nil, false).
	Validate(token string) (*entity.Identity, bool)

	// TokenTTL returns the configured session lifetime.
	TokenTTL() time.Duration
}
