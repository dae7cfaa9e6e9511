// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPasswordMinLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	// timingPassword is hashed once and compared against on unknown-email logins.
	timingPassword = "catalog-login-timing-equalizer"
	// fallbackTimingHash is a well-formed cost-10 bcrypt hash used when hashing
	// timingPassword fails, so unknown-email logins never skip the bcrypt work.
	fallbackTimingHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	minLength    int
	dummyHash    func() string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minLength := defaultPasswordMinLength
	if params.Config != nil && params.Config.PasswordPolicy != nil && params.Config.PasswordPolicy.MinLength > 0 {
		minLength = params.Config.PasswordPolicy.MinLength
	}

	hasher := params.Hasher
	logger := params.Logger

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       hasher,
		tokenService: params.TokenService,
		minLength:    minLength,
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(timingPassword)
			if err != nil {
				logger.Error("Failed to hash timing password, using fallback hash", slog.Any("error", err))

				return fallbackTimingHash
			}

			return hash
		}),
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the new user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if err := srv.validateRegistration(email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{Email: email, PasswordHash: hashedPassword}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		// A concurrent registration that slips past the check hits the unique index instead.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return srv.issueSession(newUser)
}

func (srv *authService) validateRegistration(email, password string) error {
	if email == "" || password == "" {
		return domainerrors.NewValidationError("Email and password are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return domainerrors.NewValidationError("Invalid email address")
	}
	if utf8.RuneCountInString(password) < srv.minLength {
		return domainerrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters", srv.minLength))
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.NewValidationError(fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}

// Login verifies the credentials and issues a session token.
// Unknown emails and wrong passwords are reported identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError("Email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Spend the same bcrypt time as a real comparison.
			srv.hasher.Check(input.Password, srv.dummyHash())
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return srv.issueSession(user)
}

// VerifyPassword is the step-up check. It never loads anyone but the caller.
func (srv *authService) VerifyPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if password == "" {
		return domainerrors.NewValidationError("Password is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "caller no longer exists")
		}

		return errors.Wrap(err, "failed to load caller")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Password re-verification failed", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrReauthenticationFailed, "password mismatch")
	}

	return nil
}

// Me returns the caller's public profile.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load caller")
	}

	return user.Public(), nil
}

func (srv *authService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Token: token, User: user.Public()}, nil
}
