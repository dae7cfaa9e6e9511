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

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a repository.SupplierRepository backed by GORM.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error) {
	var rows []model.SupplierModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(rows))
	for i := range rows {
		suppliers = append(suppliers, toSupplierDomain(&rows[i]))
	}

	return suppliers, nil
}

// FindOwned matches id and owner in one predicate so a foreign supplier is indistinguishable from a missing one.
func (repo *supplierRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*entity.Supplier, error) {
	var row model.SupplierModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return toSupplierDomain(&row), nil
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	row := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthorized.WrapMessage("supplier owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.ID = row.ID
	supplier.CreatedAt = row.CreatedAt
	supplier.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ? AND user_id = ?", supplier.ID, supplier.UserID).
		Updates(map[string]any{
			"name":  supplier.Name,
			"email": supplier.Email,
			"phone": supplier.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

func (repo *supplierRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SupplierModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrSupplierInUse.WrapMessage("supplier still referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:     data.ID,
		UserID: data.UserID,
		Name:   data.Name,
		Email:  data.Email,
		Phone:  data.Phone,
	}
}
