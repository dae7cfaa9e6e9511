// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email yields domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
