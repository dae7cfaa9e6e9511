package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "a@x.io", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", byID.Email)
	assert.Equal(t, "hash", byID.PasswordHash)

	byEmail, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByEmail(ctx, "nobody@x.io")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.io", PasswordHash: "hash"}))

	err := repo.Create(ctx, &entity.User{Email: "a@x.io", PasswordHash: "other"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}
