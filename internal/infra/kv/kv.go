// Package kv provides the flat key/value stores backing the POI cache table and the CLI session.
package kv

import (
	"context"
	"strings"

	"kurvalgom/config"
	"kurvalgom/internal/domain/lifecycle"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the key/value store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured store and closes it on shutdown.
func New(params Params) (service.KVStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, params.Config.KV.URL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open selects a backend by URL scheme. redis:// and rediss:// go to Redis;
// every other scheme is handed to gocloud.dev/blob (mem://, file:///dir, s3://, gs://...).
func Open(ctx context.Context, rawURL string) (service.KVStore, error) {
	if rawURL == "" {
		return nil, errors.New("kv url is empty")
	}

	if strings.HasPrefix(rawURL, "redis://") || strings.HasPrefix(rawURL, "rediss://") {
		return OpenRedis(ctx, rawURL)
	}

	return OpenBlob(ctx, rawURL)
}
