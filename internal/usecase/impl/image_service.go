package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	pathpkg "path"
	"strings"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
	"catalog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadBytes = 5 << 20

// allowedImageTypes maps sniffed content types to the extension used in storage keys.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type imageService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	storage        service.ImageStorage
	maxUploadBytes int64
	logger         *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Storage     service.ImageStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	maxUploadBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxUploadBytes = params.Config.Storage.MaxUploadBytes
	}

	return &imageService{
		txManager:      params.TxManager,
		productRepo:    params.ProductRepo,
		storage:        params.Storage,
		maxUploadBytes: maxUploadBytes,
		logger:         params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates and stores the payload, then records the image and, if the
// product has no primary yet, promotes it with a conditional update.
func (srv *imageService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadImageInput) (*usecase.ImageOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.NewValidationError("No file uploaded")
	}
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, domainerrors.NewValidationError("Product ID is required")
	}
	if int64(len(input.Data)) > srv.maxUploadBytes {
		return nil, domainerrors.NewValidationError("Image must be at most " + util.FormatBytes(srv.maxUploadBytes))
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, domainerrors.NewValidationError("Only JPEG, PNG, GIF and WebP images are allowed").
			WithDetails(map[string]any{"contentType": contentType})
	}

	productID, err := parseReference(input.ProductID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := ownedProduct(ctx, srv.productRepo, userID, productID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s%s", productID, uuid.NewString(), ext)
	if err := srv.storage.Store(ctx, key, contentType, input.Data); err != nil {
		srv.log(ctx).Error("Failed to store image payload", slog.String("path", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageStorageFailed, err.Error())
	}

	image := &entity.ProductImage{ProductID: productID, Path: key}
	var product *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := repoFactory.ImageRepo().Create(ctx, image); err != nil {
			return errors.Wrap(err, "failed to create image record")
		}

		promoted, err := productRepo.SetPrimaryImageIfUnset(ctx, productID, image.ID)
		if err != nil {
			return errors.Wrap(err, "failed to promote first image")
		}
		if promoted {
			srv.log(ctx).Debug("Image promoted to primary", slog.Any("productID", productID), slog.Any("imageID", image.ID))
		}

		product, err = productRepo.FindOwned(ctx, productID, userID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		removeStoredImage(ctx, srv.log(ctx), srv.storage, key)

		return nil, errors.Wrap(err, "failed to execute image upload transaction")
	}

	image.URL = srv.storage.URL(image.Path)
	srv.log(ctx).Info("Image uploaded",
		slog.Any("productID", productID),
		slog.Any("imageID", image.ID),
		slog.String("filename", input.Filename),
		slog.Int("bytes", len(input.Data)),
	)

	return &usecase.ImageOutput{
		Image:   image,
		Product: withImageURLs(srv.storage, product)[0],
	}, nil
}

// Delete removes an image. When it is the primary, the pointer is moved to the
// newest remaining image (or cleared) before the row is deleted, in the same transaction.
func (srv *imageService) Delete(ctx context.Context, userID, imageID uuid.UUID) (*entity.Product, error) {
	var removed *entity.ProductImage
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		imageRepo := repoFactory.ImageRepo()
		productRepo := repoFactory.ProductRepo()

		image, owner, err := ownedImage(ctx, imageRepo, productRepo, userID, imageID)
		if err != nil {
			return err
		}
		removed = image

		if owner.IsPrimary(imageID) {
			var next *uuid.UUID
			replacement, err := imageRepo.FindLatestExcept(ctx, owner.ID, imageID)
			switch {
			case err == nil:
				next = &replacement.ID
			case errors.Is(err, repository.ErrImageNotFound):
			default:
				return errors.Wrap(err, "failed to find replacement primary")
			}

			if err := productRepo.SetPrimaryImage(ctx, owner.ID, next); err != nil {
				return errors.Wrap(err, "failed to reassign primary image")
			}
		}

		if err := imageRepo.Delete(ctx, imageID); err != nil {
			return errors.Wrap(err, "failed to delete image record")
		}

		product, err = productRepo.FindByID(ctx, owner.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute image delete transaction")
	}

	removeStoredImage(ctx, srv.log(ctx), srv.storage, removed.Path)
	srv.log(ctx).Info("Image deleted", slog.Any("productID", product.ID), slog.Any("imageID", imageID))

	return withImageURLs(srv.storage, product)[0], nil
}

// SetPrimary designates one of the product's images as primary.
func (srv *imageService) SetPrimary(ctx context.Context, userID, imageID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		image, owner, err := ownedImage(ctx, repoFactory.ImageRepo(), productRepo, userID, imageID)
		if err != nil {
			return err
		}

		if err := productRepo.SetPrimaryImage(ctx, owner.ID, &image.ID); err != nil {
			return errors.Wrap(err, "failed to set primary image")
		}

		product, err = productRepo.FindByID(ctx, owner.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute set primary transaction")
	}

	return withImageURLs(srv.storage, product)[0], nil
}

// OpenFile serves a stored payload. Paths are storage keys; anything that tries
// to escape the key space is treated as missing.
func (srv *imageService) OpenFile(ctx context.Context, path string) (io.ReadCloser, string, error) {
	cleaned := pathpkg.Clean("/" + path)[1:]
	if cleaned == "" || cleaned != path {
		return nil, "", errors.Wrap(domainerrors.ErrNotFound, "invalid file path")
	}

	reader, contentType, err := srv.storage.Open(ctx, cleaned)
	if err != nil {
		if errors.Is(err, service.ErrStorageObjectNotFound) {
			return nil, "", errors.Wrap(domainerrors.ErrNotFound, "file not found")
		}

		return nil, "", errors.Wrap(err, "failed to open stored file")
	}

	return reader, contentType, nil
}
