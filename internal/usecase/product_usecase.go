package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
// Price is a decimal string; SupplierID must name one of the caller's suppliers.
type CreateProductInput struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required"`
	SupplierID  string `validate:"required"`
}

// UpdateProductInput defines a product update. A nil or empty SupplierID keeps the current supplier.
type UpdateProductInput struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required"`
	SupplierID  *string
}

// ProductUsecase manages the caller's products. Returned products carry their
// supplier and their images (newest first) with public URLs.
type ProductUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Product, error)
	Get(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, userID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
