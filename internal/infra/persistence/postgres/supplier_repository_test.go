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

func TestSupplierRepository_OwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.io")
	bob := seedUser(t, db, "bob@x.io")
	acme := seedSupplier(t, db, alice.ID, "Acme")
	seedSupplier(t, db, bob.ID, "Globex")

	found, err := repo.FindOwned(ctx, acme.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)

	_, err = repo.FindOwned(ctx, acme.ID, bob.ID)
	assert.True(t, errors.Is(err, repository.ErrSupplierNotFound))

	_, err = repo.FindOwned(ctx, uuid.New(), alice.ID)
	assert.True(t, errors.Is(err, repository.ErrSupplierNotFound))

	list, err := repo.FindByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, acme.ID, list[0].ID)
}

func TestSupplierRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	user := seedUser(t, db, "a@x.io")

	first := seedSupplier(t, db, user.ID, "First")
	second := seedSupplier(t, db, user.ID, "Second")

	list, err := repo.FindByOwner(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSupplierRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.io")
	bob := seedUser(t, db, "bob@x.io")
	supplier := seedSupplier(t, db, alice.ID, "Acme")

	supplier.Name = "Acme Corp"
	supplier.Phone = "777"
	require.NoError(t, repo.Update(ctx, supplier))

	found, err := repo.FindOwned(ctx, supplier.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.Name)
	assert.Equal(t, "777", found.Phone)

	foreign := *supplier
	foreign.UserID = bob.ID
	assert.True(t, errors.Is(repo.Update(ctx, &foreign), repository.ErrSupplierNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, supplier.ID, bob.ID), repository.ErrSupplierNotFound))

	require.NoError(t, repo.Delete(ctx, supplier.ID, alice.ID))
	_, err = repo.FindOwned(ctx, supplier.ID, alice.ID)
	assert.True(t, errors.Is(err, repository.ErrSupplierNotFound))
}
