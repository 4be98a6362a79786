// Package service contains the business logic for the telemetry API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// validateCoordinate rejects coordinates outside the valid lat/lng range
// before they are encoded and written. Reads do not re-check the range;
// stored geography only has to be structurally well-formed.
func validateCoordinate(c domain.Coordinate) error {
	if !s2.LatLngFromDegrees(c.Latitude, c.Longitude).IsValid() {
		return fmt.Errorf("%w: coordinate out of range (%g, %g)", domain.ErrValidation, c.Latitude, c.Longitude)
	}
	return nil
}
