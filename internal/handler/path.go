package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

// GetPaths handles GET /api/paths. Routes are omitted from the list view.
func (s *Server) GetPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := s.paths.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	if paths == nil {
		paths = []domain.PathSummary{}
	}
	writeJSON(w, http.StatusOK, paths)
}

// GetPath handles GET /api/paths/{pathID}, returning the path's name and
// fully decoded route.
func (s *Server) GetPath(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "pathID"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "invalid path id")
		return
	}

	path, err := s.paths.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "path not found")
		return
	}

	writeJSON(w, http.StatusOK, path)
}

// createPathRequest is the POST /api/paths body.
type createPathRequest struct {
	Name  *string             `json:"name"`
	Route []domain.Coordinate `json:"route"`
}

// idResponse is the body returned by resource-creating endpoints.
type idResponse struct {
	ID uuid.UUID `json:"id"`
}

// PostPaths handles POST /api/paths, registering a named route and returning
// the generated identifier.
func (s *Server) PostPaths(w http.ResponseWriter, r *http.Request) {
	var req createPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w)
		return
	}
	if req.Name == nil || req.Route == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "missing required field")
		return
	}

	id, err := s.paths.Create(r.Context(), *req.Name, req.Route)
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}
