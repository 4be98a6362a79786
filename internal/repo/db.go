// Package repo contains all database access logic for the telemetry API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here; only SQL and type mapping. Geography columns
// are returned opaque (json.RawMessage); decoding them is the domain's job.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// foreignKeyViolation is the Postgres error code raised when an insert
// references a trip or path that does not exist.
const foreignKeyViolation = "23503"

// mapInsertErr translates driver errors for insert operations: a foreign key
// violation becomes domain.ErrInvalidReference (a client error; the caller
// named a trip or path that is not there); everything else passes through as
// a storage failure.
func mapInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrInvalidReference
	}
	return err
}
