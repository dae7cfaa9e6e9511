package impl

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Ownership checks. Suppliers and products are only ever resolved with an
// id-and-owner predicate, so a foreign entity reads as NotFound. Images are the
// exception: they are addressed by their own ID, so the parent product is loaded
// and compared, and a foreign owner is reported as Forbidden.
// Callers pass repositories bound to their transaction. ownedImage locks the
// parent product, which serialises every image mutation on that product.

func ownedSupplier(ctx context.Context, repo repository.SupplierRepository, userID, supplierID uuid.UUID) (*entity.Supplier, error) {
	supplier, err := repo.FindOwned(ctx, supplierID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSupplierNotFound, "supplier not owned by caller")
		}

		return nil, errors.Wrap(err, "failed to resolve supplier")
	}

	return supplier, nil
}

func ownedProduct(ctx context.Context, repo repository.ProductRepository, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindOwned(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not owned by caller")
		}

		return nil, errors.Wrap(err, "failed to resolve product")
	}

	return product, nil
}

func ownedImage(
	ctx context.Context,
	images repository.ProductImageRepository,
	products repository.ProductRepository,
	userID, imageID uuid.UUID,
) (*entity.ProductImage, *entity.Product, error) {
	image, err := images.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrImageNotFound, "image lookup")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve image")
	}

	product, err := products.FindByIDForUpdate(ctx, image.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrImageNotFound, "image parent missing")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve image product")
	}

	if product.UserID != userID {
		return nil, nil, errors.Wrap(domainerrors.ErrImageOwnershipViolation, "image belongs to another user")
	}

	// A mutation that held the lock before us may have removed the image.
	if !product.HasImage(imageID) {
		return nil, nil, errors.Wrap(domainerrors.ErrImageNotFound, "image removed concurrently")
	}

	return image, product, nil
}
