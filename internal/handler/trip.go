package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// GetTrips handles GET /api/trips.
func (s *Server) GetTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	if trips == nil {
		trips = []domain.Trip{}
	}
	writeJSON(w, http.StatusOK, trips)
}

// createTripRequest is the POST /api/trips body.
type createTripRequest struct {
	PathID *uuid.UUID `json:"path_id"`
}

// PostTrips handles POST /api/trips, starting a voyage on an existing path.
// The start time is assigned server-side; the generated identifier is
// returned. A path_id that references no path is a client error and writes
// nothing.
func (s *Server) PostTrips(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w)
		return
	}
	if req.PathID == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "missing required field")
		return
	}

	id, err := s.trips.Create(r.Context(), *req.PathID)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
