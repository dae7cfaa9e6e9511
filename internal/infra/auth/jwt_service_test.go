package auth

import (
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, "a@x.io")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService := newTestJWTService(t)

	other := &rawSigner{secret: "another_secret"}
	token := other.sign(t, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeAccess,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	_, err := jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.GenerateToken(uuid.New(), "a@x.io")
	require.NoError(t, err)

	jwtService.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

	_, err = jwtService.ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_RejectsWrongTypeAndSubject(t *testing.T) {
	jwtService := newTestJWTService(t)
	signer := &rawSigner{secret: testSecret}
	exp := time.Now().Add(time.Hour).Unix()

	refresh := signer.sign(t, jwt.MapClaims{"sub": uuid.NewString(), "type": "refresh", "exp": exp}, jwt.SigningMethodHS256)
	_, err := jwtService.ValidateToken(refresh)
	assert.True(t, errors.Is(err, ErrInvalidTokenType))

	badSub := signer.sign(t, jwt.MapClaims{"sub": "42", "type": service.TokenTypeAccess, "exp": exp}, jwt.SigningMethodHS256)
	_, err = jwtService.ValidateToken(badSub)
	assert.Error(t, err)

	noExp := signer.sign(t, jwt.MapClaims{"sub": uuid.NewString(), "type": service.TokenTypeAccess}, jwt.SigningMethodHS256)
	_, err = jwtService.ValidateToken(noExp)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	jwtService := newTestJWTService(t)
	signer := &rawSigner{secret: testSecret}

	token := signer.sign(t, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeAccess,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS512)

	_, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTLFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = testSecret

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.TokenTTL())
}

// rawSigner signs arbitrary claims for negative tests.
type rawSigner struct {
	secret string
}

func (s *rawSigner) sign(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(s.secret))
	require.NoError(t, err)

	return token
}
