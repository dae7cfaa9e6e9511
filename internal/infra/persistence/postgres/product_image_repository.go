package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository creates a repository.ProductImageRepository backed by GORM.
func NewProductImageRepository(db *gorm.DB) repository.ProductImageRepository {
	return &productImageRepository{db: db}
}

func (repo *productImageRepository) Create(ctx context.Context, image *entity.ProductImage) error {
	row := fromProductImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("image references unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product image")
	}

	image.ID = row.ID
	image.CreatedAt = row.CreatedAt

	return nil
}

func (repo *productImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	var row model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image")
	}

	return toProductImageDomain(&row), nil
}

func (repo *productImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error) {
	var rows []model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product images")
	}

	images := make([]*entity.ProductImage, 0, len(rows))
	for i := range rows {
		images = append(images, toProductImageDomain(&rows[i]))
	}

	return images, nil
}

// FindLatestExcept picks the replacement primary: newest first, ties broken by the larger ID.
func (repo *productImageRepository) FindLatestExcept(ctx context.Context, productID, excludeID uuid.UUID) (*entity.ProductImage, error) {
	var row model.ProductImageModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND id <> ?", productID, excludeID).
		Order("created_at DESC").
		Order("id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find replacement image")
	}

	return toProductImageDomain(&row), nil
}

func (repo *productImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

func (repo *productImageRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImageModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}

	return nil
}

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		Path:      data.Path,
		CreatedAt: data.CreatedAt,
	}
}

func fromProductImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Path:      data.Path,
	}
}
