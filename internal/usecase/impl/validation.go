package impl

import (
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldViolation is one failed rule, exposed as VALIDATION_FAILED details.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// validateInput checks input's struct tags and reports failures under a single user-facing message.
func validateInput(input any, message string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errors.Wrap(err, "failed to validate input")
	}

	details := make([]FieldViolation, 0, len(violations))
	for _, v := range violations {
		details = append(details, FieldViolation{Field: jsonFieldName(v.Field()), Rule: v.Tag()})
	}

	return domainerrors.NewValidationError(message).WithDetails(details)
}

// jsonFieldName turns a Go field name into the camelCase name clients send, e.g. SupplierID -> supplierId.
func jsonFieldName(field string) string {
	if strings.HasSuffix(field, "ID") {
		field = strings.TrimSuffix(field, "ID") + "Id"
	}
	if field == "" {
		return field
	}

	return strings.ToLower(field[:1]) + field[1:]
}

// parseReference parses an ID supplied in a request body. A malformed ID cannot name
// anything the caller owns, so it reports the same NotFound as a missing entity.
func parseReference(raw string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.Wrap(notFound, "malformed reference")
	}

	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
