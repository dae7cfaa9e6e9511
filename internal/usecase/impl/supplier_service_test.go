package impl

import (
	"context"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupplierService_CreateAndList(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "owner@shop.io")
	other := f.seedUser(t, "other@shop.io")

	created, err := f.suppliers.Create(ctx, owner, &usecase.SupplierInput{Name: " Acme ", Email: "sales@acme.io", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.Name)
	assert.Equal(t, owner, created.UserID)
	f.seedSupplier(t, other, "globex")

	list, err := f.suppliers.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	empty, err := f.suppliers.List(ctx, f.seedUser(t, "new@shop.io"))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSupplierService_Create_Validation(t *testing.T) {
	f := newCatalogFixture(t)
	owner := f.seedUser(t, "owner@shop.io")

	_, err := f.suppliers.Create(context.Background(), owner, &usecase.SupplierInput{Name: "Acme", Email: "  "})

	require.Error(t, err)
	assert.Equal(t, "Name, email, and phone are required", err.Error())

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.ElementsMatch(t, []FieldViolation{
		{Field: "email", Rule: "required"},
		{Field: "phone", Rule: "required"},
	}, baseErr.Details())
}

func TestSupplierService_ForeignSupplierIsNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "owner@shop.io")
	intruder := f.seedUser(t, "intruder@shop.io")
	supplier := f.seedSupplier(t, owner, "acme")

	_, err := f.suppliers.Get(ctx, intruder, supplier.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))

	_, err = f.suppliers.Update(ctx, intruder, supplier.ID, &usecase.SupplierInput{Name: "x", Email: "x", Phone: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))

	err = f.suppliers.Delete(ctx, intruder, supplier.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))

	_, err = f.suppliers.Get(ctx, owner, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))

	unchanged, err := f.suppliers.Get(ctx, owner, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", unchanged.Name)
}

func TestSupplierService_Update(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "owner@shop.io")
	supplier := f.seedSupplier(t, owner, "acme")

	updated, err := f.suppliers.Update(ctx, owner, supplier.ID, &usecase.SupplierInput{Name: "Acme Corp", Email: "hq@acme.io", Phone: "555-0199"})

	require.NoError(t, err)
	assert.Equal(t, supplier.ID, updated.ID)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "hq@acme.io", updated.Email)
	assert.Equal(t, "555-0199", updated.Phone)
}

func TestSupplierService_DeleteRefusedWhileReferenced(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	owner := f.seedUser(t, "owner@shop.io")
	supplier := f.seedSupplier(t, owner, "acme")
	product := f.seedProduct(t, owner, supplier.ID, "Widget")

	err := f.suppliers.Delete(ctx, owner, supplier.ID)

	require.Error(t, err)
	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.Equal(t, "SUPPLIER_IN_USE", baseErr.ErrorCode())
	assert.Equal(t, map[string]any{"productCount": int64(1)}, baseErr.Details())

	require.NoError(t, f.products.Delete(ctx, owner, product.ID))
	require.NoError(t, f.suppliers.Delete(ctx, owner, supplier.ID))

	_, err = f.suppliers.Get(ctx, owner, supplier.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSupplierNotFound))
}

func createMockSupplierService(t *testing.T) (usecase.SupplierUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockSupplierRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	svc := NewSupplierService(SupplierServiceParams{
		TxManager:    txManager,
		SupplierRepo: supplierRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, txManager, supplierRepo
}

func TestSupplierService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	supplierID := uuid.New()
	dbErr := errors.New("connection reset")

	t.Run("list", func(t *testing.T) {
		svc, _, supplierRepo := createMockSupplierService(t)
		supplierRepo.EXPECT().FindByOwner(ctx, userID).Return(nil, dbErr)

		list, err := svc.List(ctx, userID)

		assert.Nil(t, list)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("create", func(t *testing.T) {
		svc, _, supplierRepo := createMockSupplierService(t)
		supplierRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Supplier")).Return(dbErr)

		supplier, err := svc.Create(ctx, userID, &usecase.SupplierInput{Name: "Acme", Email: "sales@acme.io", Phone: "555"})

		assert.Nil(t, supplier)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("lookup failure is not reported as not found", func(t *testing.T) {
		svc, _, supplierRepo := createMockSupplierService(t)
		supplierRepo.EXPECT().FindOwned(ctx, supplierID, userID).Return(nil, dbErr)

		supplier, err := svc.Get(ctx, userID, supplierID)

		assert.Nil(t, supplier)
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, domainerrors.ErrSupplierNotFound))
	})

	t.Run("delete stops before removing when the lookup fails", func(t *testing.T) {
		svc, txManager, _ := createMockSupplierService(t)
		onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
			factory.EXPECT().SupplierRepo().Return(txSupplierRepo)
			txSupplierRepo.EXPECT().FindOwned(ctx, supplierID, userID).Return(nil, dbErr)
		})

		err := svc.Delete(ctx, userID, supplierID)

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, domainerrors.ErrSupplierNotFound))
	})
}
