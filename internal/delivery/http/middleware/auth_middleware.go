package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from the session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the caller's ID for the handlers.
// A missing header is UNAUTHORIZED; a present but unusable token is INVALID_TOKEN.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
