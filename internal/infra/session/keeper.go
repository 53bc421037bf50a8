// Package session persists the CLI's session token in the key/value store.
package session

import (
	"context"
	"strings"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"
)

// TokenKey is the key/value store key holding the current token.
const TokenKey = "auth_token"

// Keeper stores at most one session token and answers who is logged in.
type Keeper struct {
	store  service.KVStore
	tokens service.TokenService
}

// NewKeeper is the constructor for Keeper.
func NewKeeper(store service.KVStore, tokens service.TokenService) *Keeper {
	return &Keeper{store: store, tokens: tokens}
}

// Save replaces the stored token.
func (k *Keeper) Save(ctx context.Context, token string) error {
	if err := k.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		return errors.Wrap(err, "save session token")
	}

	return nil
}

// Current returns the session encoded by the stored token. A missing, malformed
// or expired token yields (nil, nil); the latter two are also cleared.
func (k *Keeper) Current(ctx context.Context) (*entity.Session, error) {
	raw, err := k.store.Get(ctx, TokenKey)
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read session token")
	}

	token := strings.TrimSpace(string(raw))
	identity, ok := k.tokens.Validate(token)
	if !ok {
		if err := k.Clear(ctx); err != nil {
			return nil, err
		}

		return nil, nil
	}

	return &entity.Session{Token: token, Identity: identity}, nil
}

// Clear forgets the stored token. Clearing an empty keeper succeeds.
func (k *Keeper) Clear(ctx context.Context) error {
	if err := k.store.Delete(ctx, TokenKey); err != nil {
		return errors.Wrap(err, "clear session token")
	}

	return nil
}
