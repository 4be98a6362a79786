package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/repo"
)

// TripService implements business logic for voyages.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided repo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// List returns all trips, most recent first.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}

// Create starts a new trip on the given path and returns the generated
// identifier. The start time is assigned by storage; a nonexistent path
// surfaces as domain.ErrInvalidReference with nothing written.
func (s *TripService) Create(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error) {
	id, err := s.trips.Create(ctx, pathID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return id, nil
}
