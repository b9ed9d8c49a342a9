package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether the error is a Postgres foreign key
// violation, meaning a write referenced a row that does not exist (or a
// referenced row was still in use).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if code := pgErrorCode(err); code != "" {
		return code == pgCodeForeignKeyViolation
	}
	// sqlite (dev mode) reports constraint failures as plain text
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether the provided error references a unique
// violation constraint. When constraintName is provided, the helper looks for
// the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if constraintName != "" {
		return strings.Contains(err.Error(), constraintName)
	}
	if code := pgErrorCode(err); code != "" {
		return code == pgCodeUniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key value")
}

// IsNotFound reports whether the error is GORM's missing-record sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func pgErrorCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
