package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/repo"
)

// ReadingService implements business logic for sensor readings.
type ReadingService struct {
	readings repo.ReadingRepo
}

// NewReadingService constructs a ReadingService backed by the provided repo.
func NewReadingService(r repo.ReadingRepo) *ReadingService {
	return &ReadingService{readings: r}
}

// ListByTrip returns all readings for a trip in insertion order with
// geography decoded. A single corrupt row aborts the whole response.
func (s *ReadingService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Reading, error) {
	rows, err := s.readings.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ReadingService.ListByTrip: %w", err)
	}

	readings, err := domain.ProjectReadings(rows)
	if err != nil {
		return nil, fmt.Errorf("service.ReadingService.ListByTrip: %w", err)
	}
	return readings, nil
}

// Create validates and persists a sensor reading. The layer label and the
// coordinate are checked before the insert, so an invalid request never
// reaches the database. The timestamp is assigned by storage.
func (s *ReadingService) Create(ctx context.Context, input domain.ReadingSubmission) error {
	layer, err := domain.ParseLayer(input.Layer)
	if err != nil {
		return fmt.Errorf("service.ReadingService.Create: %w", err)
	}
	if err := validateCoordinate(input.Location); err != nil {
		return fmt.Errorf("service.ReadingService.Create: %w", err)
	}

	location, err := domain.EncodeCoordinate(input.Location)
	if err != nil {
		return fmt.Errorf("service.ReadingService.Create: %w", err)
	}

	err = s.readings.Create(ctx, domain.NewReading{
		Temperature: input.Temperature,
		Location:    location,
		Depth:       input.Depth,
		Layer:       layer,
		TripID:      input.TripID,
	})
	if err != nil {
		return fmt.Errorf("service.ReadingService.Create: %w", err)
	}
	return nil
}
