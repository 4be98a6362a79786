package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// CSVHeader is the fixed column order of the readings export. It is written
// exactly once per document, including when the result set is empty; an
// empty export is still a valid, self-describing CSV document.
var CSVHeader = []string{"temperature", "latitude", "longitude", "depth", "layer", "trip", "time"}

// csvTimeLayout renders an instant as DD/MM/YYYY HH:MM:SS; the signed hour
// offset is appended separately because Go has no unpadded zone verb.
const csvTimeLayout = "02/01/2006 15:04:05"

// ExportRow is one reading joined with its trip's path name, geography still
// opaque. It is the storage-side shape of a CSV export line.
type ExportRow struct {
	Temperature float64
	Location    json.RawMessage
	Depth       float64
	Layer       Layer
	PathName    string
	Time        time.Time
}

// Record flattens the row into CSV columns, shifting the stored instant by
// offsetHours. The coordinate is decomposed into latitude/longitude columns;
// a decode failure rejects the row (and with it the whole export).
//
// Only the rendered timestamp changes with the offset; the instant itself
// is stored timezone-agnostic.
func (r ExportRow) Record(offsetHours int) ([]string, error) {
	loc, err := DecodeCoordinate(r.Location)
	if err != nil {
		return nil, err
	}

	shifted := r.Time.In(time.FixedZone("", offsetHours*3600))
	ts := fmt.Sprintf("%s %+d", shifted.Format(csvTimeLayout), offsetHours)

	return []string{
		formatFloat(r.Temperature),
		formatFloat(loc.Latitude),
		formatFloat(loc.Longitude),
		formatFloat(r.Depth),
		r.Layer.String(),
		r.PathName,
		ts,
	}, nil
}

// formatFloat renders a float with the shortest representation that
// round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
