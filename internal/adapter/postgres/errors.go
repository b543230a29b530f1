package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/default-registry/internal/domain"
)

// SQLSTATE codes handled by the adapters.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError converts pgx/pgconn errors to domain errors, wrapped as
// "<entity> <id>: <err>".
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrSerializationConflict)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// MapDeleteError is MapError for DELETE statements: a foreign key violation
// means the row is still referenced, which is a conflict rather than a
// missing parent.
func MapDeleteError(err error, entity string, id any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%s %v is referenced: %w", entity, id, domain.ErrConflict)
	}
	return MapError(err, entity, id)
}

// mapTxError marks serialization failures and deadlocks; other errors pass
// through unchanged so domain errors raised inside the unit of work survive.
func mapTxError(err error) error {
	if errors.Is(err, domain.ErrSerializationConflict) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s", domain.ErrSerializationConflict, pgErr.Message)
		}
	}
	return err
}
