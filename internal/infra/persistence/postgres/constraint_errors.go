package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isSerializationFailure matches SQLSTATE 40001 (serialization_failure) and 40P01 (deadlock_detected).
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "40001") ||
		strings.Contains(errMsg, "40p01") ||
		strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "deadlock detected")
}
