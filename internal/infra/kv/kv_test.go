package kv

import (
	"context"
	"os"
	"path/filepath"
	"net/url"
	"testing"

	"kurvalgom/config"
	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store service.KVStore) {
	t.Helper()
	ctx := context.Background()
	key := "test_" + uuid.NewString()

	_, err := store.Get(ctx, key)
	assert.True(t, errors.Is(err, service.ErrKeyNotFound))

	require.NoError(t, store.Set(ctx, key, []byte(`{"a":1}`)))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, store.Set(ctx, key, []byte("replaced")))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(got))

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key), "deleting an absent key is not an error")

	_, err = store.Get(ctx, key)
	assert.True(t, errors.Is(err, service.ErrKeyNotFound))
}

func TestMemBlobStore(t *testing.T) {
	store, err := Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestFileBlobStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kv")
	store, err := Open(context.Background(), "file://"+filepath.ToSlash(dir)+"?create_dir=true")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestFileBlobStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	url := "file://" + filepath.ToSlash(t.TempDir()) + "?create_dir=true"

	first, err := Open(ctx, url)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "auth_token", []byte("abc")))
	require.NoError(t, first.Close())

	second, err := Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileBlobStore_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "kv")
	store, err := Open(context.Background(), "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
	assert.DirExists(t, dir)
}

func TestShippedConfigURLOpensOnFreshHost(t *testing.T) {
	cfg, err := config.LoadWithEnv[config.Config]("config", "../../../config")
	require.NoError(t, err)

	shipped, err := url.Parse(cfg.KV.URL)
	require.NoError(t, err)
	require.Equal(t, "file", shipped.Scheme)

	dir := filepath.Join(t.TempDir(), "fresh", "kurvalgom-kv")
	shipped.Path = filepath.ToSlash(dir)

	store, err := Open(context.Background(), shipped.String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestWithCreateDir(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "adds to bare file url", in: "file:///var/lib/kv", want: "file:///var/lib/kv?create_dir=true"},
		{name: "keeps explicit setting", in: "file:///var/lib/kv?create_dir=false", want: "file:///var/lib/kv?create_dir=false"},
		{name: "leaves other schemes alone", in: "mem://", want: "mem://"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := withCreateDir(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)

	_, err = Open(context.Background(), "nosuchscheme://bucket")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set")
	}

	store, err := Open(context.Background(), redisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}
