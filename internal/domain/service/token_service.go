package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type issued by the catalog.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the session tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks signature, expiry and type, and returns the parsed claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of session tokens.
	TokenTTL() time.Duration
}
