// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the session token issued on registration or login.
type AuthOutput struct {
	Token string             `json:"token"`
	User  *entity.PublicUser `json:"user"`
}

// AuthUsecase defines identity and step-up operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// VerifyPassword re-checks the caller's own password. It issues no grant and
	// leaves the caller's session untouched; a mismatch is ErrReauthenticationFailed.
	VerifyPassword(ctx context.Context, userID uuid.UUID, password string) error

	Me(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
}
