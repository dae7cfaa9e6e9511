package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM's translated errors are
// preferred; the message patterns cover drivers opened without TranslateError
// (PostgreSQL SQLSTATE codes, SQLite constraint messages).
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return errorMessageContains(err, "sqlstate 23505", "duplicate key", "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return errorMessageContains(err, "sqlstate 23503", "foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return errorMessageContains(err, "sqlstate 23514", "check constraint")
}

func errorMessageContains(err error, patterns ...string) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range patterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
