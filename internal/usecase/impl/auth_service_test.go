package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authTestFixture struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) *authTestFixture {
	t.Helper()

	fx := &authTestFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		tokens:    mockService.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	txUserRepo := mockRepo.NewMockUserRepository(t)
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(ctx, "owner@shop.io").Return(nil, repository.ErrUserNotFound)
		txUserRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "owner@shop.io" && u.PasswordHash == "hashed"
			})).
			Run(func(_ context.Context, u *entity.User) { u.ID = newID }).
			Return(nil)
	})
	fx.tokens.EXPECT().GenerateToken(newID, "owner@shop.io").Return("signed-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "  Owner@Shop.io ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, &entity.PublicUser{ID: newID, Email: "owner@shop.io"}, out.User)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.RegisterInput
		expected string
	}{
		{"missing email", usecase.RegisterInput{Password: "secret1"}, "Email and password are required"},
		{"missing password", usecase.RegisterInput{Email: "a@b.io"}, "Email and password are required"},
		{"malformed email", usecase.RegisterInput{Email: "not-an-email", Password: "secret1"}, "Invalid email address"},
		{"short password", usecase.RegisterInput{Email: "a@b.io", Password: "12345"}, "Password must be at least 6 characters"},
		{"oversized password", usecase.RegisterInput{Email: "a@b.io", Password: strings.Repeat("x", 73)}, "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			out, err := fx.service.Register(context.Background(), &tt.input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	txUserRepo := mockRepo.NewMockUserRepository(t)

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(txUserRepo)
		txUserRepo.EXPECT().FindByEmail(ctx, "owner@shop.io").Return(&entity.User{ID: uuid.New()}, nil)
	})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "owner@shop.io", Password: "secret1"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "owner@shop.io", Password: "secret1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@shop.io", PasswordHash: "stored-hash"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "owner@shop.io").Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)
		fx.tokens.EXPECT().GenerateToken(user.ID, user.Email).Return("signed-token", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "OWNER@shop.io", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "owner@shop.io").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-one", "stored-hash").Return(false)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "owner@shop.io", Password: "wrong-one"})

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email still compares a hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@shop.io").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(timingPassword).Return("dummy-hash", nil).Once()
		fx.hasher.EXPECT().Check("secret1", "dummy-hash").Return(false)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@shop.io", Password: "secret1"})

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email falls back to a constant hash when hashing fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@shop.io").Return(nil, repository.ErrUserNotFound).Twice()
		fx.hasher.EXPECT().Hash(timingPassword).Return("", errors.New("entropy exhausted")).Once()
		fx.hasher.EXPECT().Check("secret1", fallbackTimingHash).Return(false).Twice()

		for range 2 {
			out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@shop.io", Password: "secret1"})

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "owner@shop.io"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestAuthService_VerifyPassword(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@shop.io", PasswordHash: "stored-hash"}

	t.Run("match", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "stored-hash").Return(true)

		assert.NoError(t, fx.service.VerifyPassword(ctx, user.ID, "secret1"))
	})

	t.Run("mismatch is a client error, not a session error", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("guess", "stored-hash").Return(false)

		err := fx.service.VerifyPassword(ctx, user.ID, "guess")

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "REAUTHENTICATION_FAILED", appErr.ErrorCode())
	})

	t.Run("empty password", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.VerifyPassword(ctx, user.ID, "")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		assert.Equal(t, "Password is required", err.Error())
	})

	t.Run("caller no longer exists", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		err := fx.service.VerifyPassword(ctx, user.ID, "secret1")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)
	user := &entity.User{ID: uuid.New(), Email: "owner@shop.io", PasswordHash: "stored-hash"}
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	profile, err := fx.service.Me(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, &entity.PublicUser{ID: user.ID, Email: user.Email}, profile)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	registered, err := f.auth.Register(ctx, &usecase.RegisterInput{Email: "owner@shop.io", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)

	_, err = f.auth.Register(ctx, &usecase.RegisterInput{Email: "OWNER@shop.io", Password: "another1"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	loggedIn, err := f.auth.Login(ctx, &usecase.LoginInput{Email: "owner@shop.io", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	require.NoError(t, f.auth.VerifyPassword(ctx, registered.User.ID, "secret1"))
	assert.True(t, errors.Is(f.auth.VerifyPassword(ctx, registered.User.ID, "secret2"), domainerrors.ErrReauthenticationFailed))
}
