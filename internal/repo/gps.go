package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// GPSRepo defines the persistence operations for the raw position history.
// The history is append-only and independent of trips and paths.
type GPSRepo interface {
	// List returns the count most recent records, newest first.
	// A count of zero yields an empty result.
	List(ctx context.Context, count int64) ([]domain.GPSRow, error)

	// Create appends a position record with a database-assigned timestamp.
	Create(ctx context.Context, location json.RawMessage) error
}

// pgGPSRepo is the Postgres implementation of GPSRepo.
type pgGPSRepo struct {
	db db
}

// NewGPSRepo constructs a GPSRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGPSRepo(db db) GPSRepo {
	return &pgGPSRepo{db: db}
}

// List returns the most recent position records ordered by time descending.
func (r *pgGPSRepo) List(ctx context.Context, count int64) ([]domain.GPSRow, error) {
	const q = `
		SELECT location, time
		FROM gps_history
		ORDER BY time DESC
		LIMIT @count`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"count": count})
	if err != nil {
		return nil, fmt.Errorf("repo.GPSRepo.List: %w", err)
	}
	defer rows.Close()

	var records []domain.GPSRow
	for rows.Next() {
		var (
			row      domain.GPSRow
			location []byte
		)
		if err := rows.Scan(&location, &row.Time); err != nil {
			return nil, fmt.Errorf("repo.GPSRepo.List: scan: %w", err)
		}
		row.Location = json.RawMessage(location)
		records = append(records, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.GPSRepo.List: rows: %w", err)
	}

	return records, nil
}

// Create appends a new position record. The timestamp is assigned by the database.
func (r *pgGPSRepo) Create(ctx context.Context, location json.RawMessage) error {
	const q = `INSERT INTO gps_history (location) VALUES (@location)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"location": []byte(location)}); err != nil {
		return fmt.Errorf("repo.GPSRepo.Create: %w", err)
	}
	return nil
}
