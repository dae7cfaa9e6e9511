package usecase

import (
	"context"
	"io"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadImageInput carries one uploaded image payload.
type UploadImageInput struct {
	ProductID string
	Filename  string
	Data      []byte
}

// ImageOutput returns the affected image together with the refreshed product.
type ImageOutput struct {
	Image   *entity.ProductImage `json:"image"`
	Product *entity.Product      `json:"product"`
}

// ImageUsecase manages product image collections and the single-primary invariant.
type ImageUsecase interface {
	// Upload stores the payload, records the image and promotes it to primary if none is set.
	Upload(ctx context.Context, userID uuid.UUID, input *UploadImageInput) (*ImageOutput, error)

	// Delete removes an image, moving the primary pointer to the newest remaining image first.
	Delete(ctx context.Context, userID, imageID uuid.UUID) (*entity.Product, error)

	SetPrimary(ctx context.Context, userID, imageID uuid.UUID) (*entity.Product, error)

	// OpenFile streams a stored payload for public serving.
	OpenFile(ctx context.Context, path string) (io.ReadCloser, string, error)
}
