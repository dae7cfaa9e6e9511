package storage

import (
	"context"
	"io"
	"testing"

	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, basePath string) service.ImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, basePath)
}

func TestBlobStorage_StoreOpenDelete(t *testing.T) {
	store := newTestStorage(t, "/uploads")
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "products/p1/a.png", "image/png", []byte("png-bytes")))

	reader, contentType, err := store.Open(ctx, "products/p1/a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "products/p1/a.png"))

	_, _, err = store.Open(ctx, "products/p1/a.png")
	assert.True(t, errors.Is(err, service.ErrStorageObjectNotFound))
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	store := newTestStorage(t, "/uploads")

	assert.NoError(t, store.Delete(context.Background(), "products/missing.png"))
}

func TestBlobStorage_URL(t *testing.T) {
	tests := []struct {
		basePath string
		want     string
	}{
		{basePath: "/uploads", want: "/uploads/products/p1/a.png"},
		{basePath: "uploads/", want: "/uploads/products/p1/a.png"},
		{basePath: "", want: "/products/p1/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.basePath, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestStorage(t, tt.basePath).URL("products/p1/a.png"))
		})
	}
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "file:///tmp/x", redactBucketURL("file:///tmp/x?create_dir=true"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
