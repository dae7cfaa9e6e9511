// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError renders a domain error. Details are only exposed for client errors.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.HTTPCode() < http.StatusInternalServerError {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), "Internal server error", nil)
}
