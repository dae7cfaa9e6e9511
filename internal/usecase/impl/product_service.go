package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	createProductFieldsRequired = "Name, description, price, and supplierId are required"
	updateProductFieldsRequired = "Name, description, and price are required"
)

// maxPrice is the first value that no longer fits numeric(12,2).
var maxPrice = decimal.New(1, 10)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	storage     service.ImageStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Storage     service.ImageStorage
	Logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return withImageURLs(srv.storage, products...), nil
}

// Search matches query against product and supplier names, ignoring case.
func (srv *productService) Search(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Product, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, domainerrors.NewValidationError("Search query is required")
	}

	products, err := srv.productRepo.Search(ctx, userID, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	srv.log(ctx).Debug("Product search", slog.String("query", term), slog.Int("results", len(products)))

	return withImageURLs(srv.storage, products...), nil
}

func (srv *productService) Get(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := ownedProduct(ctx, srv.productRepo, userID, productID)
	if err != nil {
		return nil, err
	}

	return withImageURLs(srv.storage, product)[0], nil
}

func (srv *productService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	fields := &usecase.CreateProductInput{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
		SupplierID:  strings.TrimSpace(input.SupplierID),
	}
	if err := validateInput(fields, createProductFieldsRequired); err != nil {
		return nil, err
	}

	price, err := parsePrice(fields.Price)
	if err != nil {
		return nil, err
	}

	supplierID, err := parseReference(fields.SupplierID, domainerrors.ErrSupplierNotFound)
	if err != nil {
		return nil, err
	}

	var created *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := ownedSupplier(ctx, repoFactory.SupplierRepo(), userID, supplierID); err != nil {
			return err
		}

		product := &entity.Product{
			UserID:      userID,
			SupplierID:  supplierID,
			Name:        fields.Name,
			Description: fields.Description,
			Price:       price,
		}
		productRepo := repoFactory.ProductRepo()
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		created, err = productRepo.FindOwned(ctx, product.ID, userID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", created.ID), slog.Any("supplierID", supplierID))

	return withImageURLs(srv.storage, created)[0], nil
}

// Update rewrites the product's fields. Input is validated before the store is touched;
// a supplier change is resolved through the caller's own suppliers.
func (srv *productService) Update(ctx context.Context, userID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	fields := &usecase.UpdateProductInput{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
	}
	if err := validateInput(fields, updateProductFieldsRequired); err != nil {
		return nil, err
	}

	price, err := parsePrice(fields.Price)
	if err != nil {
		return nil, err
	}

	var newSupplierID *uuid.UUID
	if input.SupplierID != nil && strings.TrimSpace(*input.SupplierID) != "" {
		parsed, err := parseReference(*input.SupplierID, domainerrors.ErrSupplierNotFound)
		if err != nil {
			return nil, err
		}
		newSupplierID = &parsed
	}

	var updated *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := ownedProduct(ctx, productRepo, userID, productID)
		if err != nil {
			return err
		}

		if newSupplierID != nil && *newSupplierID != product.SupplierID {
			if _, err := ownedSupplier(ctx, repoFactory.SupplierRepo(), userID, *newSupplierID); err != nil {
				return err
			}
			product.SupplierID = *newSupplierID
		}

		product.Name = fields.Name
		product.Description = fields.Description
		product.Price = price
		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated, err = productRepo.FindOwned(ctx, productID, userID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return withImageURLs(srv.storage, updated)[0], nil
}

// Delete removes the product with all of its image rows in one transaction.
// Stored payloads are cleaned up afterwards; failures there are only logged.
func (srv *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	var paths []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := ownedProduct(ctx, productRepo, userID, productID)
		if err != nil {
			return err
		}

		for _, img := range product.Images {
			paths = append(paths, img.Path)
		}

		if err := repoFactory.ImageRepo().DeleteByProduct(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product images")
		}

		return productRepo.Delete(ctx, productID, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute product delete transaction")
	}

	for _, path := range paths {
		removeStoredImage(ctx, srv.log(ctx), srv.storage, path)
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Int("images", len(paths)))

	return nil
}

// parsePrice accepts a non-negative decimal that fits numeric(12,2), rounded to cents.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.NewValidationError("Price must be a valid number")
	}
	if price.IsNegative() {
		return decimal.Zero, domainerrors.NewValidationError("Price must be a non-negative number")
	}

	price = price.Round(2)
	if price.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, domainerrors.NewValidationError("Price is too large")
	}

	return price, nil
}

// withImageURLs fills the public URL of every image in place.
func withImageURLs(storage service.ImageStorage, products ...*entity.Product) []*entity.Product {
	for _, product := range products {
		for _, img := range product.Images {
			img.URL = storage.URL(img.Path)
		}
	}

	return products
}

func removeStoredImage(ctx context.Context, logger *slog.Logger, storage service.ImageStorage, path string) {
	if err := storage.Delete(ctx, path); err != nil {
		logger.Warn("Failed to remove stored image", slog.String("path", path), slog.Any("error", err))
	}
}
