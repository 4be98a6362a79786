// Package handler implements the HTTP handlers for the telemetry API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (reading.go, gps.go, etc.) but all share the same Server struct so
// they can access its dependencies. Handlers bind request parameters, invoke
// a servicer, and serialize the result; no business logic lives here.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// ReadingServicer defines the business operations the data handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ReadingServicer interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Reading, error)
	Create(ctx context.Context, input domain.ReadingSubmission) error
}

// ExportServicer defines the CSV export operation the data handler depends on.
type ExportServicer interface {
	ExportCSV(ctx context.Context, tripID uuid.UUID, offsetHours int) ([]byte, error)
}

// GPSServicer defines the business operations the gps handler depends on.
type GPSServicer interface {
	List(ctx context.Context, count *int64) ([]domain.GPSRecord, error)
	Create(ctx context.Context, location domain.Coordinate) error
}

// PathServicer defines the business operations the paths handler depends on.
type PathServicer interface {
	List(ctx context.Context) ([]domain.PathSummary, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Path, error)
	Create(ctx context.Context, name string, route []domain.Coordinate) (uuid.UUID, error)
}

// TripServicer defines the business operations the trips handler depends on.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Create(ctx context.Context, pathID uuid.UUID) (uuid.UUID, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	readings ReadingServicer
	export   ExportServicer
	gps      GPSServicer
	paths    PathServicer
	trips    TripServicer
	colour   *ColourCell
}

// NewServer constructs the Server with all its dependencies.
func NewServer(readings ReadingServicer, export ExportServicer, gps GPSServicer, paths PathServicer, trips TripServicer) *Server {
	return &Server{
		readings: readings,
		export:   export,
		gps:      gps,
		paths:    paths,
		trips:    trips,
		colour:   NewColourCell(),
	}
}
