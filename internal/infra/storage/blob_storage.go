// Package storage implements service.ImageStorage on top of gocloud.dev blob buckets,
// so the same code writes to a local directory, memory, GCS or S3 depending on the bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/gcsblob"  // gs:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs
	_ "gocloud.dev/blob/s3blob"   // s3:// URLs
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket         *blob.Bucket
	publicBasePath string
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.ImageStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.InfoContext(ctx, "Image storage ready",
				slog.String("bucket", redactBucketURL(params.Config.Storage.BucketURL)),
				slog.String("publicBasePath", params.Config.Storage.PublicBasePath),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, params.Config.Storage.PublicBasePath), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBasePath string) service.ImageStorage {
	return &blobStorage{
		bucket:         bucket,
		publicBasePath: "/" + strings.Trim(publicBasePath, "/"),
	}
}

func (s *blobStorage) Store(ctx context.Context, key, contentType string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}

	return nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrStorageObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobStorage) URL(key string) string {
	if s.publicBasePath == "/" {
		return "/" + key
	}

	return s.publicBasePath + "/" + key
}

// redactBucketURL drops query parameters, which may carry credentials paths.
func redactBucketURL(raw string) string {
	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		return raw[:idx]
	}

	return raw
}
