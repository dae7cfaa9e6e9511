package validator

import (
	"strings"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestRequestValidator_Validate(t *testing.T) {
	rv := New()

	require.NoError(t, rv.Validate(&sampleRequest{Name: "abc"}))

	err := rv.Validate(&sampleRequest{Name: strings.Repeat("x", 6), Email: "nope"})
	require.Error(t, err)

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.Equal(t, "VALIDATION_FAILED", baseErr.ErrorCode())
	assert.ElementsMatch(t, []FieldViolation{
		{Field: "name", Rule: "max", Param: "5"},
		{Field: "email", Rule: "email"},
	}, baseErr.Details())
}
