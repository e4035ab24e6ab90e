package postgres

import (
	domainerrors "storerating/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeCheckViolation      = "23514"
)

// Constraint names declared by the schema migrations.
const (
	constraintStoresOwner    = "stores_owner_id_key"
	constraintRatingsStoreFK = "ratings_store_id_fkey"
	constraintRatingsUserFK  = "ratings_user_id_fkey"
)

// errCheckViolation reports a row the schema's CHECK constraints rejected.
var errCheckViolation = domainerrors.ErrValidationFailed.WithDetails("a field is outside its allowed length or values")

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueConstraintViolation reports a unique violation, optionally restricted to one constraint.
// gorm's translated error carries no constraint name and only matches the unrestricted form.
func isUniqueConstraintViolation(err error, constraint ...string) bool {
	if len(constraint) == 0 && errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return matchesViolation(err, pgCodeUniqueViolation, constraint)
}

func isForeignKeyConstraintViolation(err error, constraint ...string) bool {
	if len(constraint) == 0 && errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return matchesViolation(err, pgCodeForeignKeyViolation, constraint)
}

func isCheckConstraintViolation(err error, constraint ...string) bool {
	if len(constraint) == 0 && errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return matchesViolation(err, pgCodeCheckViolation, constraint)
}

func matchesViolation(err error, code string, constraints []string) bool {
	gotCode, gotConstraint := pgErrorCode(err)
	if gotCode != code {
		return false
	}
	if len(constraints) == 0 {
		return true
	}

	for _, c := range constraints {
		if c == gotConstraint {
			return true
		}
	}

	return false
}
