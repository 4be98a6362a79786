package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReadingRow is a sensor reading as it comes out of storage: the geography
// column is still the opaque JSON value. Rows must pass through Project
// before leaving the service layer.
type ReadingRow struct {
	Temperature float64
	Location    json.RawMessage
	Depth       float64
	Layer       Layer
	Time        time.Time
}

// Reading is the validated output shape of a sensor reading, with geography
// decoded into a Coordinate.
type Reading struct {
	Temperature float64    `json:"temperature"`
	Location    Coordinate `json:"location"`
	Depth       float64    `json:"depth"`
	Layer       Layer      `json:"layer"`
	Time        time.Time  `json:"time"`
}

// Project decodes the stored geography, producing the output shape.
// It never partially succeeds: a malformed location rejects the whole row.
func (r ReadingRow) Project() (Reading, error) {
	loc, err := DecodeCoordinate(r.Location)
	if err != nil {
		return Reading{}, err
	}
	return Reading{
		Temperature: r.Temperature,
		Location:    loc,
		Depth:       r.Depth,
		Layer:       r.Layer,
		Time:        r.Time,
	}, nil
}

// ProjectReadings projects a batch of rows in order. A single decode failure
// aborts the whole batch rather than returning a truncated list.
func ProjectReadings(rows []ReadingRow) ([]Reading, error) {
	out := make([]Reading, len(rows))
	for i, row := range rows {
		r, err := row.Project()
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// NewReading is the validated insert shape for a sensor reading. The
// timestamp is absent on purpose; it is assigned by the database at insert
// time, never supplied by the client.
type NewReading struct {
	Temperature float64
	Location    json.RawMessage // encoded via EncodeCoordinate
	Depth       float64
	Layer       Layer
	TripID      uuid.UUID
}

// ReadingSubmission is a sensor ingestion request as received from a client,
// before validation. Layer is the raw textual label; the service parses it
// against the closed enumeration before anything touches storage.
type ReadingSubmission struct {
	Temperature float64
	Location    Coordinate
	Depth       float64
	Layer       string
	TripID      uuid.UUID
}
