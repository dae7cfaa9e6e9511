package postgres

import (
	"context"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedSupplier(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entity.Supplier {
	t.Helper()

	supplier := &entity.Supplier{UserID: userID, Name: name, Email: name + "@supplier.io", Phone: "555"}
	require.NoError(t, NewSupplierRepository(db).Create(context.Background(), supplier))

	return supplier
}

func seedProduct(t *testing.T, db *gorm.DB, userID, supplierID uuid.UUID, name string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		UserID:      userID,
		SupplierID:  supplierID,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString("9.99"),
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func seedImage(t *testing.T, db *gorm.DB, productID uuid.UUID, path string) *entity.ProductImage {
	t.Helper()

	image := &entity.ProductImage{ProductID: productID, Path: path}
	require.NoError(t, NewProductImageRepository(db).Create(context.Background(), image))

	return image
}
