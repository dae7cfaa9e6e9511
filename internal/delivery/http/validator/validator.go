// Package validator plugs go-playground/validator into echo's Validate hook.
package validator

import (
	"reflect"
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldViolation names one failed rule on a request field.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON or form names.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &RequestValidator{validate: v}
}

// Validate returns a VALIDATION_FAILED error listing every violated rule.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]FieldViolation, 0, len(violations))
	for _, v := range violations {
		details = append(details, FieldViolation{Field: v.Field(), Rule: v.Tag(), Param: v.Param()})
	}

	return domainerrors.NewValidationError("Request contains invalid fields").WithDetails(details)
}
