package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Adosh74/ai-nutrition-app/apperrors"
)

// uniqueViolationField reports which field caused a unique-index violation,
// read from the constraint name the driver hands back (idx_users_email,
// idx_users_phone, ...). ok is true for any unique violation, even when the
// constraint name matches no known field.
func uniqueViolationField(err error) (field string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}
	name := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(name, "email"):
		return "email", true
	case strings.Contains(name, "phone"):
		return "phone", true
	}
	return "", true
}

// isForeignKeyViolation matches writes that reference a missing row as well
// as deletes blocked by a RESTRICT constraint.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.ForeignKeyViolation || pgErr.Code == pgerrcode.RestrictViolation
}

func duplicateFieldError(field string) *apperrors.Error {
	if field == "" {
		return apperrors.NewBadRequest("value is already in use")
	}
	return apperrors.NewBadRequest(field + " is already in use")
}
