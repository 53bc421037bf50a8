package kv

import (
	"context"
	"net/url"
	"strings"

	"kurvalgom/internal/domain/service"
	"kurvalgom/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// URL opener
	_ "gocloud.dev/blob/memblob"  // mem:// URL opener
	"gocloud.dev/gcerrors"
)

// blobStore keeps one blob object per key.
type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlob opens a bucket URL as a key/value store. A file:// directory that
// does not exist yet is created unless the URL sets create_dir itself.
func OpenBlob(ctx context.Context, bucketURL string) (service.KVStore, error) {
	bucketURL, err := withCreateDir(bucketURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

func withCreateDir(bucketURL string) (string, error) {
	if !strings.HasPrefix(bucketURL, "file://") {
		return bucketURL, nil
	}

	u, err := url.Parse(bucketURL)
	if err != nil {
		return "", errors.Wrapf(err, "parse bucket url %s", bucketURL)
	}
	query := u.Query()
	if query.Has("create_dir") {
		return bucketURL, nil
	}
	query.Set("create_dir", "true")
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: "application/octet-stream"}); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return s.bucket.Close()
}
