package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// GetData handles GET /api/data/{tripID}.
// The format query selects the representation: any case variant of "csv"
// yields the flattened CSV export, everything else (including absent) yields
// JSON. The offset query shifts CSV timestamps by whole hours; it is ignored
// for JSON, where instants are RFC 3339.
func (s *Server) GetData(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid trip id")
		return
	}

	if domain.ParseFormat(r.URL.Query().Get("format")) == domain.FormatCSV {
		s.getDataCSV(w, r, tripID)
		return
	}
	s.getDataJSON(w, r, tripID)
}

func (s *Server) getDataJSON(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	readings, err := s.readings.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}

	if readings == nil {
		readings = []domain.Reading{} // empty JSON array, not null
	}
	writeJSON(w, http.StatusOK, readings)
}

func (s *Server) getDataCSV(w http.ResponseWriter, r *http.Request, tripID uuid.UUID) {
	offset, err := domain.ParseUTCOffset(r.URL.Query().Get("offset"))
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	doc, err := s.export.ExportCSV(r.Context(), tripID, offset)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write(doc) //nolint:errcheck
}

// createReadingRequest is the POST /api/data body. Pointer fields distinguish
// absent values from zero values so incomplete bodies are rejected.
type createReadingRequest struct {
	Temperature *float64           `json:"temperature"`
	Location    *domain.Coordinate `json:"location"`
	Depth       *float64           `json:"depth"`
	Layer       *string            `json:"layer"`
	TripID      *uuid.UUID         `json:"trip_id"`
}

// PostData handles POST /api/data. The reading's timestamp is assigned
// server-side; success returns 204 with no body.
func (s *Server) PostData(w http.ResponseWriter, r *http.Request) {
	var req createReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w)
		return
	}
	if req.Temperature == nil || req.Location == nil || req.Depth == nil || req.Layer == nil || req.TripID == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "missing required field")
		return
	}

	err := s.readings.Create(r.Context(), domain.ReadingSubmission{
		Temperature: *req.Temperature,
		Location:    *req.Location,
		Depth:       *req.Depth,
		Layer:       *req.Layer,
		TripID:      *req.TripID,
	})
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
