package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// GetGPS handles GET /api/gps.
// The count query limits how many records are returned (default 100, newest
// first). There is no upper bound.
func (s *Server) GetGPS(w http.ResponseWriter, r *http.Request) {
	var count *int64
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid count")
			return
		}
		count = &n
	}

	records, err := s.gps.List(r.Context(), count)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	if records == nil {
		records = []domain.GPSRecord{} // empty JSON array, not null
	}
	writeJSON(w, http.StatusOK, records)
}

// PostGPS handles POST /api/gps. The body is a single coordinate; the record
// timestamp is assigned server-side. Success returns 204 with no body.
func (s *Server) PostGPS(w http.ResponseWriter, r *http.Request) {
	var location domain.Coordinate
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		writeBadBody(w)
		return
	}

	if err := s.gps.Create(r.Context(), location); err != nil {
		writeDomainError(w, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
