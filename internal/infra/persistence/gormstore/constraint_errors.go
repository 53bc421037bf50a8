package gormstore

import (
	"strings"

	"kurvalgom/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognizes unique index rejections on both dialects.
// Translated errors arrive as gorm.ErrDuplicatedKey; the message checks cover
// drivers or code paths that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // SQLite
		strings.Contains(errMsg, "duplicate key value") || // PostgreSQL
		strings.Contains(errMsg, "sqlstate 23505")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") || // SQLite
		strings.Contains(errMsg, "null value in column") || // PostgreSQL
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
