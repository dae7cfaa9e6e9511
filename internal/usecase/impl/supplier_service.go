package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const supplierFieldsRequired = "Name, email, and phone are required"

type supplierService struct {
	txManager    repository.TransactionManager
	supplierRepo repository.SupplierRepository
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SupplierRepo repository.SupplierRepository
	Logger       *slog.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    params.TxManager,
		supplierRepo: params.SupplierRepo,
		logger:       params.Logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *supplierService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Supplier, error) {
	suppliers, err := srv.supplierRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

func (srv *supplierService) Get(ctx context.Context, userID, supplierID uuid.UUID) (*entity.Supplier, error) {
	return ownedSupplier(ctx, srv.supplierRepo, userID, supplierID)
}

func (srv *supplierService) Create(ctx context.Context, userID uuid.UUID, input *usecase.SupplierInput) (*entity.Supplier, error) {
	fields := trimSupplierInput(input)
	if err := validateInput(fields, supplierFieldsRequired); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		UserID: userID,
		Name:   fields.Name,
		Email:  fields.Email,
		Phone:  fields.Phone,
	}
	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		srv.log(ctx).Error("Failed to create supplier", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create supplier")
	}

	srv.log(ctx).Info("Supplier created", slog.Any("supplierID", supplier.ID))

	return supplier, nil
}

func (srv *supplierService) Update(ctx context.Context, userID, supplierID uuid.UUID, input *usecase.SupplierInput) (*entity.Supplier, error) {
	fields := trimSupplierInput(input)
	if err := validateInput(fields, supplierFieldsRequired); err != nil {
		return nil, err
	}

	var updated *entity.Supplier
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		supplier, err := ownedSupplier(ctx, supplierRepo, userID, supplierID)
		if err != nil {
			return err
		}

		supplier.Name = fields.Name
		supplier.Email = fields.Email
		supplier.Phone = fields.Phone
		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier")
		}

		updated, err = supplierRepo.FindOwned(ctx, supplierID, userID)

		return errors.Wrap(err, "failed to reload supplier")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute supplier update transaction")
	}

	return updated, nil
}

// Delete removes a supplier that no product references. The count and the delete
// share a transaction so a product created in between cannot be orphaned.
func (srv *supplierService) Delete(ctx context.Context, userID, supplierID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		if _, err := ownedSupplier(ctx, supplierRepo, userID, supplierID); err != nil {
			return err
		}

		count, err := repoFactory.ProductRepo().CountBySupplier(ctx, supplierID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count supplier products")
		}
		if count > 0 {
			return domainerrors.ErrSupplierInUse.WithDetails(map[string]any{"productCount": count})
		}

		return supplierRepo.Delete(ctx, supplierID, userID)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSupplierInUse) {
			srv.log(ctx).Warn("Supplier delete refused, still referenced", slog.Any("supplierID", supplierID))
		}

		return errors.Wrap(err, "failed to delete supplier")
	}

	srv.log(ctx).Info("Supplier deleted", slog.Any("supplierID", supplierID))

	return nil
}

func trimSupplierInput(input *usecase.SupplierInput) *usecase.SupplierInput {
	return &usecase.SupplierInput{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	}
}
