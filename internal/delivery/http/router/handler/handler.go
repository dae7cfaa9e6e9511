// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callerID returns the user resolved by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("no authenticated caller on request")
	}

	return userID, nil
}

// pathID parses a UUID path parameter. Anything unparsable cannot name an
// entity the caller owns, so it is reported as that entity's NotFound.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound.WrapMessage("malformed path id")
	}

	return id, nil
}

// bindAndValidate decodes the body and applies the request's transport rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.NewValidationError("Invalid request body"), err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
