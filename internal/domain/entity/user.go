// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns suppliers and products.
// Users are created on registration and never mutated afterwards.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}

// PublicUser is the subset of a User that may be returned to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Public strips credentials from the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{ID: u.ID, Email: u.Email}
}
