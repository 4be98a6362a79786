package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Layer is the closed enumeration of vertical water positions a reading can
// be taken at. Its external labels ("surface", "middle", "sea bed") match
// both the JSON representation and the Postgres enum type.
type Layer string

const (
	LayerSurface Layer = "surface"
	LayerMiddle  Layer = "middle"
	LayerSeaBed  Layer = "sea bed"
)

// ParseLayer converts an external label into a Layer. Matching is
// case-insensitive, but unknown values are rejected; there is no default.
// The wrapped ErrValidation lets handlers map the failure to a client error.
func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(s) {
	case string(LayerSurface):
		return LayerSurface, nil
	case string(LayerMiddle):
		return LayerMiddle, nil
	case string(LayerSeaBed):
		return LayerSeaBed, nil
	}
	return "", fmt.Errorf("%w: unknown layer %q", ErrValidation, s)
}

// String returns the external label.
func (l Layer) String() string { return string(l) }

// MarshalJSON emits the external label.
func (l Layer) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

// UnmarshalJSON parses an external label strictly via ParseLayer.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLayer(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
