package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// ReadingRepo defines the persistence operations for sensor readings.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ReadingRepo interface {
	// ListByTrip returns all readings for a trip in insertion order,
	// geography still opaque.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ReadingRow, error)

	// ListForExport returns all readings for a trip joined with the name of
	// the trip's path, in insertion order.
	ListForExport(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error)

	// Create inserts a reading with a database-assigned timestamp.
	// Returns domain.ErrInvalidReference if the trip does not exist.
	Create(ctx context.Context, r domain.NewReading) error
}

// pgReadingRepo is the Postgres implementation of ReadingRepo.
type pgReadingRepo struct {
	db db
}

// NewReadingRepo constructs a ReadingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReadingRepo(db db) ReadingRepo {
	return &pgReadingRepo{db: db}
}

// ListByTrip returns the trip's readings ordered by insertion.
func (r *pgReadingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ReadingRow, error) {
	const q = `
		SELECT temperature, location, depth, layer, time
		FROM readings
		WHERE trip_id = @trip_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReadingRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var readings []domain.ReadingRow
	for rows.Next() {
		row, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReadingRepo.ListByTrip: scan: %w", err)
		}
		readings = append(readings, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReadingRepo.ListByTrip: rows: %w", err)
	}

	return readings, nil
}

// ListForExport joins each reading with its trip's path name for the CSV export.
func (r *pgReadingRepo) ListForExport(ctx context.Context, tripID uuid.UUID) ([]domain.ExportRow, error) {
	const q = `
		SELECT r.temperature, r.location, r.depth, r.layer, p.name, r.time
		FROM readings r
		JOIN trips t ON t.id = r.trip_id
		JOIN paths p ON p.id = t.path_id
		WHERE r.trip_id = @trip_id
		ORDER BY r.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReadingRepo.ListForExport: %w", err)
	}
	defer rows.Close()

	var out []domain.ExportRow
	for rows.Next() {
		var (
			row      domain.ExportRow
			location []byte
			layer    string
		)
		if err := rows.Scan(&row.Temperature, &location, &row.Depth, &layer, &row.PathName, &row.Time); err != nil {
			return nil, fmt.Errorf("repo.ReadingRepo.ListForExport: scan: %w", err)
		}
		row.Location = json.RawMessage(location)
		row.Layer, err = storedLayer(layer)
		if err != nil {
			return nil, fmt.Errorf("repo.ReadingRepo.ListForExport: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReadingRepo.ListForExport: rows: %w", err)
	}

	return out, nil
}

// Create inserts a new reading row. The timestamp is assigned by the database.
func (r *pgReadingRepo) Create(ctx context.Context, reading domain.NewReading) error {
	const q = `
		INSERT INTO readings (temperature, location, depth, layer, trip_id)
		VALUES (@temperature, @location, @depth, @layer::layer, @trip_id)`

	args := pgx.NamedArgs{
		"temperature": reading.Temperature,
		"location":    []byte(reading.Location),
		"depth":       reading.Depth,
		"layer":       reading.Layer.String(),
		"trip_id":     reading.TripID,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.ReadingRepo.Create: %w", mapInsertErr(err))
	}
	return nil
}

// scanReading maps a single database row into a domain.ReadingRow.
// The location column is kept opaque; the layer label is re-validated so a
// value outside the enum surfaces as corrupt data rather than leaking through.
func scanReading(s scanner) (domain.ReadingRow, error) {
	var (
		row      domain.ReadingRow
		location []byte
		layer    string
	)
	if err := s.Scan(&row.Temperature, &location, &row.Depth, &layer, &row.Time); err != nil {
		return domain.ReadingRow{}, err
	}
	row.Location = json.RawMessage(location)

	var err error
	row.Layer, err = storedLayer(layer)
	if err != nil {
		return domain.ReadingRow{}, err
	}
	return row, nil
}

// storedLayer converts a stored enum label into a domain.Layer. The database
// enum should make failure impossible; if it happens anyway the row is
// corrupt, which is a decode error, not a validation error.
func storedLayer(label string) (domain.Layer, error) {
	l, err := domain.ParseLayer(label)
	if err != nil {
		return "", fmt.Errorf("%w: stored layer %q", domain.ErrDecode, label)
	}
	return l, nil
}
