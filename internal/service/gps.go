package service

import (
	"context"
	"fmt"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/repo"
)

// GPSService implements business logic for the raw position history.
type GPSService struct {
	gps repo.GPSRepo
}

// NewGPSService constructs a GPSService backed by the provided repo.
func NewGPSService(r repo.GPSRepo) *GPSService {
	return &GPSService{gps: r}
}

// List returns the most recent position records, newest first, with
// geography decoded. A nil count falls back to the default of 100.
func (s *GPSService) List(ctx context.Context, count *int64) ([]domain.GPSRecord, error) {
	rows, err := s.gps.List(ctx, domain.NewGPSCount(count))
	if err != nil {
		return nil, fmt.Errorf("service.GPSService.List: %w", err)
	}

	records, err := domain.ProjectGPSRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("service.GPSService.List: %w", err)
	}
	return records, nil
}

// Create validates and appends a position record. The timestamp is assigned
// by storage.
func (s *GPSService) Create(ctx context.Context, location domain.Coordinate) error {
	if err := validateCoordinate(location); err != nil {
		return fmt.Errorf("service.GPSService.Create: %w", err)
	}

	encoded, err := domain.EncodeCoordinate(location)
	if err != nil {
		return fmt.Errorf("service.GPSService.Create: %w", err)
	}

	if err := s.gps.Create(ctx, encoded); err != nil {
		return fmt.Errorf("service.GPSService.Create: %w", err)
	}
	return nil
}
