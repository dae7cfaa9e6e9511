package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/infra/auth"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/infra/storage"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

var (
	pngPayload  = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	jpegPayload = append([]byte("\xff\xd8\xff\xe0"), make([]byte, 64)...)
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:           &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 6},
		Storage:        &config.StorageConfig{PublicBasePath: "/uploads", MaxUploadBytes: 1024},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

// catalogFixture wires the real services over an in-memory SQLite database and a memory bucket.
type catalogFixture struct {
	cfg       *config.Config
	bucket    *blob.Bucket
	storage   service.ImageStorage
	users     repository.UserRepository
	suppliers usecase.SupplierUsecase
	products  usecase.ProductUsecase
	images    usecase.ImageUsecase
	auth      usecase.AuthUsecase
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := postgres.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db, config.DriverSQLite))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := newTestConfig()
	logger := newDiscardLogger()
	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	imageStorage := storage.NewBlobStorage(bucket, cfg.Storage.PublicBasePath)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &catalogFixture{
		cfg:     cfg,
		bucket:  bucket,
		storage: imageStorage,
		users:   userRepo,
		suppliers: NewSupplierService(SupplierServiceParams{
			TxManager:    txManager,
			SupplierRepo: postgres.NewSupplierRepository(db),
			Logger:       logger,
		}),
		products: NewProductService(ProductServiceParams{
			TxManager:   txManager,
			ProductRepo: productRepo,
			Storage:     imageStorage,
			Logger:      logger,
		}),
		images: NewImageService(ImageServiceParams{
			TxManager:   txManager,
			ProductRepo: productRepo,
			Storage:     imageStorage,
			Config:      cfg,
			Logger:      logger,
		}),
		auth: NewAuthService(AuthServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokenService,
			Config:       cfg,
			Logger:       logger,
		}),
	}
}

func (f *catalogFixture) seedUser(t *testing.T, email string) uuid.UUID {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "unused"}
	require.NoError(t, f.users.Create(context.Background(), user))

	return user.ID
}

func (f *catalogFixture) seedSupplier(t *testing.T, userID uuid.UUID, name string) *entity.Supplier {
	t.Helper()

	supplier, err := f.suppliers.Create(context.Background(), userID, &usecase.SupplierInput{
		Name:  name,
		Email: "sales@" + name + ".io",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	return supplier
}

func (f *catalogFixture) seedProduct(t *testing.T, userID, supplierID uuid.UUID, name string) *entity.Product {
	t.Helper()

	product, err := f.products.Create(context.Background(), userID, &usecase.CreateProductInput{
		Name:        name,
		Description: name + " description",
		Price:       "19.99",
		SupplierID:  supplierID.String(),
	})
	require.NoError(t, err)

	return product
}

func (f *catalogFixture) upload(t *testing.T, userID, productID uuid.UUID) *usecase.ImageOutput {
	t.Helper()

	out, err := f.images.Upload(context.Background(), userID, &usecase.UploadImageInput{
		ProductID: productID.String(),
		Filename:  "photo.png",
		Data:      pngPayload,
	})
	require.NoError(t, err)

	return out
}

func (f *catalogFixture) blobExists(t *testing.T, key string) bool {
	t.Helper()

	exists, err := f.bucket.Exists(context.Background(), key)
	require.NoError(t, err)

	return exists
}

// onExecute runs fn against a fresh mock factory and makes Execute return whatever fn returns.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
