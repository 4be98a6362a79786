package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// TripRepo defines the persistence operations for voyages.
// Trips are created once with a database-assigned start time and are never
// updated or deleted by this API.
type TripRepo interface {
	// List returns all trips ordered by start time descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Create inserts a trip referencing the given path and returns the
	// database-generated identifier.
	// Returns domain.ErrInvalidReference if the path does not exist.
	Create(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// List returns all trips ordered by start time descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT id, start_time, path_id
		FROM trips
		ORDER BY start_time DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Create inserts a new trip row. The identifier and start time are assigned
// by the database.
func (r *pgTripRepo) Create(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error) {
	const q = `
		INSERT INTO trips (path_id)
		VALUES (@path_id)
		RETURNING id`

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"path_id": pathID}).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("repo.TripRepo.Create: %w", mapInsertErr(err))
	}
	return uuid.UUID(id.Bytes), nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		pathID pgtype.UUID
	)
	if err := s.Scan(&id, &t.Time, &pathID); err != nil {
		return domain.Trip{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.PathID = uuid.UUID(pathID.Bytes)
	return t, nil
}
