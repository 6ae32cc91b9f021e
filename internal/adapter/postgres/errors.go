package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// PostgreSQL error codes translated by MapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row in the message, usually its id.
// context.DeadlineExceeded and context.Canceled are NOT mapped: they pass through.
// A foreign key violation maps to ErrNotFound (a referenced row is missing).
func MapError(err error, entity string, key any) error {
	return mapError(err, entity, key, domain.ErrNotFound)
}

// MapDeleteError is MapError for DELETE statements: a foreign key violation
// means the row is still referenced and maps to ErrConflict.
func MapDeleteError(err error, entity string, key any) error {
	return mapError(err, entity, key, domain.ErrConflict)
}

// MapWriteError is MapError for INSERT and UPDATE statements that reference
// other rows. refs maps a foreign key constraint name to the referenced entity
// kind; a violation of a listed constraint becomes a domain.DependencyError.
// Unlisted constraints fall back to ErrNotFound.
func MapWriteError(err error, entity string, key any, refs map[string]string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		if dep, ok := refs[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, domain.NewDependencyError(dep))
		}
	}
	return mapError(err, entity, key, domain.ErrNotFound)
}

func mapError(err error, entity string, key any, onForeignKey error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, key, onForeignKey)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
