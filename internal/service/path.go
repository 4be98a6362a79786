package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/repo"
)

// PathService implements business logic for registered routes.
type PathService struct {
	paths repo.PathRepo
}

// NewPathService constructs a PathService backed by the provided repo.
func NewPathService(r repo.PathRepo) *PathService {
	return &PathService{paths: r}
}

// List returns all paths as id/name summaries.
func (s *PathService) List(ctx context.Context) ([]domain.PathSummary, error) {
	paths, err := s.paths.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PathService.List: %w", err)
	}
	return paths, nil
}

// Get returns a single path with its route fully decoded.
func (s *PathService) Get(ctx context.Context, id uuid.UUID) (domain.Path, error) {
	row, err := s.paths.GetByID(ctx, id)
	if err != nil {
		return domain.Path{}, fmt.Errorf("service.PathService.Get: %w", err)
	}

	path, err := row.Project()
	if err != nil {
		return domain.Path{}, fmt.Errorf("service.PathService.Get: %w", err)
	}
	return path, nil
}

// Create validates and registers a new path, returning the generated
// identifier. Route encoding is all-or-nothing: one bad coordinate rejects
// the whole registration.
func (s *PathService) Create(ctx context.Context, name string, route []domain.Coordinate) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, fmt.Errorf("service.PathService.Create: %w: name is required", domain.ErrValidation)
	}
	for _, c := range route {
		if err := validateCoordinate(c); err != nil {
			return uuid.Nil, fmt.Errorf("service.PathService.Create: %w", err)
		}
	}

	encoded, err := domain.EncodeRoute(route)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.PathService.Create: %w", err)
	}

	id, err := s.paths.Create(ctx, domain.NewPath{Name: name, Route: encoded})
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.PathService.Create: %w", err)
	}
	return id, nil
}
