package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when a product image is not found.
var ErrImageNotFound = errors.New("product image not found")

// ProductImageRepository defines persistence for a product's image collection.
type ProductImageRepository interface {
	// Create persists a new image row.
	Create(ctx context.Context, image *entity.ProductImage) error

	// FindByID retrieves an image by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error)

	// FindByProduct lists a product's images, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error)

	// FindLatestExcept returns the most recently created image of productID other than excludeID.
	// Returns ErrImageNotFound when no other image exists.
	FindLatestExcept(ctx context.Context, productID, excludeID uuid.UUID) (*entity.ProductImage, error)

	// Delete removes a single image row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProduct removes every image row of a product.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}
