package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup, including
// when the product exists but belongs to a different user.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product persistence. Every finder that returns a
// product preloads its supplier and its images (newest first).
type ProductRepository interface {
	// FindByOwner lists a user's products, newest first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// Search lists a user's products whose name or supplier name contains term, ignoring case.
	Search(ctx context.Context, userID uuid.UUID, term string) ([]*entity.Product, error)

	// FindOwned resolves a product with a single `id AND user_id` predicate.
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error)

	// FindByID resolves a product without owner scoping. Only for paths where the
	// product was reached through a child object that is itself addressable.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate is FindByID after taking the product's row lock, so image
	// mutations on one product run one after another. Call it inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update writes name, description, price and supplier of a product owned by product.UserID.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CountBySupplier counts a user's products referencing supplierID.
	CountBySupplier(ctx context.Context, supplierID, userID uuid.UUID) (int64, error)

	// SetPrimaryImage points the product's primary image at imageID, or clears it when imageID is nil.
	SetPrimaryImage(ctx context.Context, productID uuid.UUID, imageID *uuid.UUID) error

	// SetPrimaryImageIfUnset sets the primary image only while none is set.
	// It reports whether the row was changed.
	SetPrimaryImageIfUnset(ctx context.Context, productID, imageID uuid.UUID) (bool, error)
}
