package service

import (
	"context"
	"io"
)

// ImageStorage persists raw image payloads outside the database.
// Keys are slash separated paths relative to the storage root, e.g. "products/<id>/<name>.png".
type ImageStorage interface {
	// Store writes data under key with the given content type.
	Store(ctx context.Context, key, contentType string, data []byte) error

	// Delete removes the payload stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Open returns a reader for the payload and its content type.
	// Returns ErrStorageObjectNotFound when the key does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// URL returns the public URL path under which the payload is served.
	URL(key string) string
}
