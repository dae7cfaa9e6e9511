package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/repository"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductImageRepository_FindAndReplacement(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductImageRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	first := seedImage(t, db, product.ID, "products/1.png")
	second := seedImage(t, db, product.ID, "products/2.png")
	third := seedImage(t, db, product.ID, "products/3.png")

	found, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "products/2.png", found.Path)
	assert.Equal(t, product.ID, found.ProductID)

	images, err := repo.FindByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, third.ID, images[0].ID)

	replacement, err := repo.FindLatestExcept(ctx, product.ID, third.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, replacement.ID)

	replacement, err = repo.FindLatestExcept(ctx, product.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, third.ID, replacement.ID)
}

func TestProductImageRepository_NoReplacement(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductImageRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	only := seedImage(t, db, product.ID, "products/1.png")

	_, err := repo.FindLatestExcept(ctx, product.ID, only.ID)
	assert.True(t, errors.Is(err, repository.ErrImageNotFound))
}

func TestProductImageRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductImageRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	first := seedImage(t, db, product.ID, "products/1.png")
	seedImage(t, db, product.ID, "products/2.png")

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err := repo.FindByID(ctx, first.ID)
	assert.True(t, errors.Is(err, repository.ErrImageNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, first.ID), repository.ErrImageNotFound))

	require.NoError(t, repo.DeleteByProduct(ctx, product.ID))
	images, err := repo.FindByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestProductImageRepository_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductImageRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrImageNotFound))
}
