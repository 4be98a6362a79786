// Package domain contains the core data types for the vessel telemetry
// backend. It is imported by every other internal package (repo, service,
// handler) and performs no I/O: geography arrives as opaque stored JSON and
// is decoded here through explicit, fallible projections.
package domain

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a latitude/longitude pair, the unit of geographic data
// exchanged and stored. It is a value type with no identity.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// coordinateAliases mirrors the accepted wire forms of a Coordinate.
// Clients may send "lat"/"lng" instead of the canonical field names.
type coordinateAliases struct {
	Latitude  *float64 `json:"latitude"`
	Lat       *float64 `json:"lat"`
	Longitude *float64 `json:"longitude"`
	Lng       *float64 `json:"lng"`
}

// UnmarshalJSON accepts either canonical field names or the lat/lng aliases.
// Both components must be present; a missing or null component is an error.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var raw coordinateAliases
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lat := raw.Latitude
	if lat == nil {
		lat = raw.Lat
	}
	lng := raw.Longitude
	if lng == nil {
		lng = raw.Lng
	}

	if lat == nil {
		return fmt.Errorf("coordinate: missing latitude")
	}
	if lng == nil {
		return fmt.Errorf("coordinate: missing longitude")
	}

	c.Latitude = *lat
	c.Longitude = *lng
	return nil
}

// EncodeCoordinate encodes a Coordinate into the opaque JSON form stored in
// the database. The canonical field names are always used on the way in, so
// stored geography never carries aliases.
func EncodeCoordinate(c Coordinate) (json.RawMessage, error) {
	b, err := json.Marshal(struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}(c))
	if err != nil {
		return nil, fmt.Errorf("encode coordinate: %w", err)
	}
	return b, nil
}

// DecodeCoordinate decodes stored geography back into a Coordinate.
// Failure wraps ErrDecode: the stored value is malformed server-side data.
func DecodeCoordinate(raw json.RawMessage) (Coordinate, error) {
	var c Coordinate
	if err := json.Unmarshal(raw, &c); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return c, nil
}

// EncodeRoute encodes an ordered route as a JSON array of coordinates.
// Route order is significant; it defines travel order.
func EncodeRoute(route []Coordinate) (json.RawMessage, error) {
	out := make([]json.RawMessage, len(route))
	for i, c := range route {
		enc, err := EncodeCoordinate(c)
		if err != nil {
			return nil, fmt.Errorf("encode route[%d]: %w", i, err)
		}
		out[i] = enc
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode route: %w", err)
	}
	return b, nil
}

// DecodeRoute decodes a stored route. Decoding is all-or-nothing: a single
// malformed element fails the whole route with ErrDecode, never a partial
// result.
func DecodeRoute(raw json.RawMessage) ([]Coordinate, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: route: %v", ErrDecode, err)
	}
	route := make([]Coordinate, len(elems))
	for i, e := range elems {
		c, err := DecodeCoordinate(e)
		if err != nil {
			return nil, fmt.Errorf("route[%d]: %w", i, err)
		}
		route[i] = c
	}
	return route, nil
}
