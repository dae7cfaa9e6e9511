package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/repository"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_FindOwnedPreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	older := seedImage(t, db, product.ID, "products/a.png")
	newer := seedImage(t, db, product.ID, "products/b.png")

	found, err := repo.FindOwned(ctx, product.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Supplier)
	assert.Equal(t, "Acme", found.Supplier.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(found.Price))
	require.Len(t, found.Images, 2)
	assert.Equal(t, newer.ID, found.Images[0].ID)
	assert.Equal(t, older.ID, found.Images[1].ID)
	assert.Nil(t, found.PrimaryImageID)
}

func TestProductRepository_OwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.io")
	bob := seedUser(t, db, "bob@x.io")
	supplier := seedSupplier(t, db, alice.ID, "Acme")
	product := seedProduct(t, db, alice.ID, supplier.ID, "Widget")

	_, err := repo.FindOwned(ctx, product.ID, bob.ID)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))

	byID, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byID.UserID)

	list, err := repo.FindByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.True(t, errors.Is(repo.Delete(ctx, product.ID, bob.ID), repository.ErrProductNotFound))
}

func TestProductRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.io")
	bob := seedUser(t, db, "bob@x.io")
	acme := seedSupplier(t, db, alice.ID, "Acme")
	globex := seedSupplier(t, db, alice.ID, "Globex")
	bobs := seedSupplier(t, db, bob.ID, "Acme")

	widget := seedProduct(t, db, alice.ID, acme.ID, "Blue Widget")
	gadget := seedProduct(t, db, alice.ID, globex.ID, "Gadget")
	cotton := seedProduct(t, db, alice.ID, globex.ID, "100% Cotton")
	seedProduct(t, db, bob.ID, bobs.ID, "Widget")

	tests := []struct {
		name string
		term string
		want []uuid.UUID
	}{
		{name: "product name ignores case", term: "wIdGeT", want: []uuid.UUID{widget.ID}},
		{name: "supplier name", term: "globex", want: []uuid.UUID{gadget.ID, cotton.ID}},
		{name: "no match", term: "nothing", want: []uuid.UUID{}},
		{name: "percent is literal", term: "0%", want: []uuid.UUID{cotton.ID}},
		{name: "underscore is literal", term: "_", want: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, alice.ID, tt.term)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
				assert.Equal(t, alice.ID, p.UserID)
				assert.NotNil(t, p.Supplier)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestProductRepository_UpdateAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	acme := seedSupplier(t, db, user.ID, "Acme")
	globex := seedSupplier(t, db, user.ID, "Globex")
	product := seedProduct(t, db, user.ID, acme.ID, "Widget")

	count, err := repo.CountBySupplier(ctx, acme.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	product.Name = "Widget v2"
	product.Price = decimal.RequireFromString("12.50")
	product.SupplierID = globex.ID
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindOwned(ctx, product.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", found.Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(found.Price))
	assert.Equal(t, "Globex", found.Supplier.Name)

	count, err = repo.CountBySupplier(ctx, acme.ID, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProductRepository_PrimaryImagePointer(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	first := seedImage(t, db, product.ID, "products/1.png")
	second := seedImage(t, db, product.ID, "products/2.png")

	changed, err := repo.SetPrimaryImageIfUnset(ctx, product.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.SetPrimaryImageIfUnset(ctx, product.ID, second.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	found, err := repo.FindOwned(ctx, product.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PrimaryImageID)
	assert.Equal(t, first.ID, *found.PrimaryImageID)

	require.NoError(t, repo.SetPrimaryImage(ctx, product.ID, &second.ID))
	found, err = repo.FindOwned(ctx, product.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, *found.PrimaryImageID)

	require.NoError(t, repo.SetPrimaryImage(ctx, product.ID, nil))
	found, err = repo.FindOwned(ctx, product.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.PrimaryImageID)

	assert.True(t, errors.Is(repo.SetPrimaryImage(ctx, uuid.New(), nil), repository.ErrProductNotFound))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestProductRepository_SearchFoldsNonASCII(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	emile := seedSupplier(t, db, user.ID, "Émile Fournitures")
	acme := seedSupplier(t, db, user.ID, "Acme")
	eclair := seedProduct(t, db, user.ID, acme.ID, "Éclair")
	straps := seedProduct(t, db, user.ID, emile.ID, "Straps")

	tests := []struct {
		term string
		want []uuid.UUID
	}{
		{term: "éclair", want: []uuid.UUID{eclair.ID}},
		{term: "ÉCLAIR", want: []uuid.UUID{eclair.ID}},
		{term: "émile", want: []uuid.UUID{straps.ID}},
		{term: "É", want: []uuid.UUID{eclair.ID, straps.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := repo.Search(ctx, user.ID, tt.term)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestProductRepository_FindByIDForUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "a@x.io")
	supplier := seedSupplier(t, db, user.ID, "Acme")
	product := seedProduct(t, db, user.ID, supplier.ID, "Widget")
	image := seedImage(t, db, product.ID, "products/a.png")

	found, err := repo.FindByIDForUpdate(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.True(t, found.HasImage(image.ID))
	require.NotNil(t, found.Supplier)

	_, err = repo.FindByIDForUpdate(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
