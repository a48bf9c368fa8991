// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/rental-service/internal/types"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// DuplicateKeyError names the unique key a write collided with, either the
// PostgreSQL constraint or the indexed column of the in-memory store
type DuplicateKeyError struct {
	What string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.What, ErrDuplicateKey)
	}
	return fmt.Sprintf("%s (%s): %v", e.What, e.Key, ErrDuplicateKey)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// DuplicateOn reports whether err is a unique violation on column, matching
// the default PostgreSQL constraint name <table>_<column>_key as well
func DuplicateOn(err error, column string) bool {
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		return false
	}
	return dup.Key == column || strings.HasSuffix(dup.Key, "_"+column+"_key")
}

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// constraintName returns the violated constraint, empty when err is not a PgError
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// translate maps driver errors onto the storage sentinels, what describes the
// failed operation
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case isNoRows(err):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case IsDuplicateKeyError(err):
		return &DuplicateKeyError{What: what, Key: constraintName(err)}
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", what, ErrForeignKeyViolation)
	}

	return fmt.Errorf("failed to %s: %w", what, err)
}

// AsDomainError maps the storage sentinels onto domain error kinds described
// by the formatted message, anything else is wrapped as an internal failure
func AsDomainError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	switch {
	case errors.Is(err, ErrNotFound):
		return types.NewError(types.ErrNotFound, "%s", msg)
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrForeignKeyViolation):
		return types.NewError(types.ErrConflict, "%s", msg)
	case types.IsKind(err):
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
