package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// PathRepo defines the persistence operations for registered routes.
// Paths are created once and never updated or deleted.
type PathRepo interface {
	// List returns all paths as id/name summaries, route omitted.
	List(ctx context.Context) ([]domain.PathSummary, error)

	// GetByID retrieves a single path with its route still opaque.
	// Returns domain.ErrNotFound if no path with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.PathRow, error)

	// Create inserts a new path and returns the database-generated identifier.
	Create(ctx context.Context, p domain.NewPath) (uuid.UUID, error)
}

// pgPathRepo is the Postgres implementation of PathRepo.
type pgPathRepo struct {
	db db
}

// NewPathRepo constructs a PathRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPathRepo(db db) PathRepo {
	return &pgPathRepo{db: db}
}

// List returns all paths ordered by name.
func (r *pgPathRepo) List(ctx context.Context) ([]domain.PathSummary, error) {
	const q = `SELECT id, name FROM paths ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PathRepo.List: %w", err)
	}
	defer rows.Close()

	var paths []domain.PathSummary
	for rows.Next() {
		var (
			p  domain.PathSummary
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &p.Name); err != nil {
			return nil, fmt.Errorf("repo.PathRepo.List: scan: %w", err)
		}
		p.ID = uuid.UUID(id.Bytes)
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PathRepo.List: rows: %w", err)
	}

	return paths, nil
}

// GetByID retrieves a path by primary key, route opaque.
func (r *pgPathRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PathRow, error) {
	const q = `SELECT name, route FROM paths WHERE id = @id`

	var (
		row   domain.PathRow
		route []byte
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&row.Name, &route)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PathRow{}, fmt.Errorf("repo.PathRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.PathRow{}, fmt.Errorf("repo.PathRepo.GetByID: %w", err)
	}
	row.Route = json.RawMessage(route)

	return row, nil
}

// Create inserts a new path row and returns the generated identifier.
func (r *pgPathRepo) Create(ctx context.Context, p domain.NewPath) (uuid.UUID, error) {
	const q = `
		INSERT INTO paths (name, route)
		VALUES (@name, @route)
		RETURNING id`

	args := pgx.NamedArgs{
		"name":  p.Name,
		"route": []byte(p.Route),
	}

	var id pgtype.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("repo.PathRepo.Create: %w", err)
	}
	return uuid.UUID(id.Bytes), nil
}
