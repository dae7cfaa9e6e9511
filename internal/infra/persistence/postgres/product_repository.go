package postgres

import (
	"context"
	"strings"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const sqliteDialect = "sqlite"

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a repository.ProductRepository backed by GORM.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// withRelations preloads the supplier and the image collection, newest image first.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Supplier").
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC").Order("id DESC")
		})
}

func (repo *productRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var rows []model.ProductModel
	err := withRelations(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(rows), nil
}

// Search matches term as a case-insensitive substring of the product name or its supplier's name.
// SQLite's LOWER only folds ASCII, so under that dialect the owner's products are
// filtered in Go with Unicode case folding.
func (repo *productRepository) Search(ctx context.Context, userID uuid.UUID, term string) ([]*entity.Product, error) {
	if repo.db.Dialector.Name() == sqliteDialect {
		return repo.searchFolded(ctx, userID, term)
	}

	pattern := "%" + escapeLike(term) + "%"

	var rows []model.ProductModel
	err := withRelations(repo.db.WithContext(ctx)).
		Select("products.*").
		Joins("JOIN suppliers ON suppliers.id = products.supplier_id").
		Where("products.user_id = ?", userID).
		Where(
			`(LOWER(products.name) LIKE LOWER(?) ESCAPE '\' OR LOWER(suppliers.name) LIKE LOWER(?) ESCAPE '\')`,
			pattern, pattern,
		).
		Order("products.created_at DESC").
		Order("products.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductsDomain(rows), nil
}

func (repo *productRepository) searchFolded(ctx context.Context, userID uuid.UUID, term string) ([]*entity.Product, error) {
	var rows []model.ProductModel
	err := withRelations(repo.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	needle := strings.ToLower(term)
	matched := rows[:0]
	for _, row := range rows {
		if containsFolded(row.Name, needle) || (row.Supplier != nil && containsFolded(row.Supplier.Name, needle)) {
			matched = append(matched, row)
		}
	}

	return toProductsDomain(matched), nil
}

func containsFolded(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// FindOwned matches id and owner in one predicate so a foreign product is indistinguishable from a missing one.
func (repo *productRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	err := withRelations(repo.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&row), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	err := withRelations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&row), nil
}

// FindByIDForUpdate locks the product row before loading it with its relations.
// The lock is a separate statement so the preloaded images are read after it is
// granted and reflect whatever the previous lock holder committed.
// SQLite has no row locks; its single writer already serialises the transaction.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if repo.db.Dialector.Name() != sqliteDialect {
		var locked model.ProductModel
		err := repo.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Take(&locked).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to lock product")
		}
	}

	return repo.FindByID(ctx, id)
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Supplier", "User", "Images").Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSupplierNotFound.WrapMessage("product references unknown supplier")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("Price must be a non-negative number")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"supplier_id": product.SupplierID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrSupplierNotFound.WrapMessage("product references unknown supplier")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewValidationError("Price must be a non-negative number")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) CountBySupplier(ctx context.Context, supplierID, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("supplier_id = ? AND user_id = ?", supplierID, userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products by supplier")
	}

	return count, nil
}

func (repo *productRepository) SetPrimaryImage(ctx context.Context, productID uuid.UUID, imageID *uuid.UUID) error {
	var value any = gorm.Expr("NULL")
	if imageID != nil {
		value = *imageID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("primary_image_id", value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set primary image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetPrimaryImageIfUnset is a single conditional UPDATE, so concurrent first uploads cannot both win.
func (repo *productRepository) SetPrimaryImageIfUnset(ctx context.Context, productID, imageID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND primary_image_id IS NULL", productID).
		Update("primary_image_id", imageID)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set initial primary image")
	}

	return result.RowsAffected > 0, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(term)
}

func toProductsDomain(rows []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toProductImageDomain(&data.Images[i]))
	}

	return &entity.Product{
		ID:             data.ID,
		UserID:         data.UserID,
		SupplierID:     data.SupplierID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		PrimaryImageID: data.PrimaryImageID,
		Supplier:       toSupplierDomain(data.Supplier),
		Images:         images,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		UserID:         data.UserID,
		SupplierID:     data.SupplierID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		PrimaryImageID: data.PrimaryImageID,
	}
}
