package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PathSummary is the list view of a path: identity and name only, route
// omitted.
type PathSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PathRow is a single path as stored: the route column is still the opaque
// JSON array.
type PathRow struct {
	Name  string
	Route json.RawMessage
}

// Path is the detail view of a path with its route fully decoded. A path is
// created once via registration and is immutable thereafter.
type Path struct {
	Name  string       `json:"name"`
	Route []Coordinate `json:"route"`
}

// Project decodes the stored route. All-or-nothing: one malformed element
// rejects the whole path.
func (r PathRow) Project() (Path, error) {
	route, err := DecodeRoute(r.Route)
	if err != nil {
		return Path{}, err
	}
	return Path{Name: r.Name, Route: route}, nil
}

// NewPath is the validated insert shape for registering a path.
type NewPath struct {
	Name  string
	Route json.RawMessage // encoded via EncodeRoute
}
