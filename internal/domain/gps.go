package domain

import (
	"encoding/json"
	"time"
)

// GPSRow is a raw position sample as stored: geography still opaque.
type GPSRow struct {
	Location json.RawMessage
	Time     time.Time
}

// GPSRecord is a timestamped position sample independent of any trip or
// path. The history is append-only and read most-recent-first.
type GPSRecord struct {
	Location Coordinate `json:"location"`
	Time     time.Time  `json:"time"`
}

// Project decodes the stored geography into the output shape.
func (r GPSRow) Project() (GPSRecord, error) {
	loc, err := DecodeCoordinate(r.Location)
	if err != nil {
		return GPSRecord{}, err
	}
	return GPSRecord{Location: loc, Time: r.Time}, nil
}

// ProjectGPSRecords projects a batch of rows, preserving order.
// One malformed row aborts the entire batch.
func ProjectGPSRecords(rows []GPSRow) ([]GPSRecord, error) {
	out := make([]GPSRecord, len(rows))
	for i, row := range rows {
		rec, err := row.Project()
		if err != nil {
			return nil, err
		}
		out[i] = rec
	}
	return out, nil
}

// defaultGPSCount is how many records a GPS history read returns when the
// caller does not say. There is deliberately no upper bound; callers may
// request unbounded history.
const defaultGPSCount = 100

// NewGPSCount resolves an optional count query value. A nil pointer falls
// back to the default of 100; zero and negative values are passed through
// (zero yields an empty result set from the LIMIT clause).
func NewGPSCount(count *int64) int64 {
	if count == nil {
		return defaultGPSCount
	}
	return *count
}
