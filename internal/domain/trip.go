package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single voyage following a path. The start time is
// assigned by the database when the trip is created, never by the client.
// Trips carry no geography of their own; readings reference them.
type Trip struct {
	ID     uuid.UUID `json:"id"`
	Time   time.Time `json:"time"`
	PathID uuid.UUID `json:"path_id"`
}
