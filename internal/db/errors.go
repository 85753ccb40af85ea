package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique constraint.
	// It is the authoritative duplicate signal; callers must not rely on a
	// prior existence check.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConstraint is returned when a write violates a CHECK constraint,
	// e.g. a status outside the schema's accepted values. Callers treat it
	// as invalid input, not a storage failure.
	ErrConstraint = errors.New("constraint violation")
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// translate maps driver-level errors onto the package sentinels. Both drivers
// are in play: pgx/stdlib in production, lib/pq in the container tests.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return translateCode(pgErr.Code, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return translateCode(string(pqErr.Code), err)
	}
	return err
}

func translateCode(code string, err error) error {
	switch code {
	case uniqueViolation:
		return ErrDuplicate
	case checkViolation:
		return ErrConstraint
	}
	return err
}
