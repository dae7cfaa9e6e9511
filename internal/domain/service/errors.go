package service

import "catalog/internal/errors"

// ErrStorageObjectNotFound is returned by ImageStorage.Open for unknown keys.
var ErrStorageObjectNotFound = errors.New("storage object not found")
