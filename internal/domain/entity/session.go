package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the set of claims carried by a session token.
// It is never persisted on the server side.
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the identity is no longer valid at the given instant.
func (i *Identity) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// Session pairs an issued token with the identity it encodes.
type Session struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity"`
}
