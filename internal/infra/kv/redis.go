package kv

import (
	"context"

	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "kurvalgom:"

type redisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to the Redis URL and verifies the connection with a PING.
func OpenRedis(ctx context.Context, redisURL string) (service.KVStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "ping redis")
	}

	return &redisStore{client: client, prefix: defaultKeyPrefix}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

// Set stores the value without expiry; entry freshness is tracked by the value itself.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
