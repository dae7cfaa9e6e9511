package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// SupplierInput carries the editable supplier fields. All three are required.
type SupplierInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	Phone string `validate:"required"`
}

// SupplierUsecase manages the caller's suppliers. Every method is scoped to userID.
type SupplierUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error)
	Get(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Supplier, error)
	Create(ctx context.Context, userID uuid.UUID, input *SupplierInput) (*entity.Supplier, error)
	Update(ctx context.Context, userID, supplierID uuid.UUID, input *SupplierInput) (*entity.Supplier, error)

	// Delete refuses with ErrSupplierInUse while any product references the supplier.
	Delete(ctx context.Context, userID, supplierID uuid.UUID) error
}
