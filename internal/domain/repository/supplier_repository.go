package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is returned when no supplier matches the lookup, including
// when the supplier exists but belongs to a different user.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository defines owner-scoped supplier persistence.
type SupplierRepository interface {
	// FindByOwner lists a user's suppliers, newest first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error)

	// FindOwned resolves a supplier with a single `id AND user_id` predicate.
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Supplier, error)

	// Create persists a new supplier.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// Update writes name, email and phone of a supplier owned by supplier.UserID.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete removes a supplier owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
