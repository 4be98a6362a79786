package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the response representation for a readings query.
type Format int

const (
	// FormatJSON is the default representation.
	FormatJSON Format = iota
	// FormatCSV selects the flattened CSV export.
	FormatCSV
)

// ParseFormat maps a format query value to a Format. Any case variant of
// "csv" selects CSV; every other value, including the empty string, falls
// back to JSON. An unrecognized format is never an error.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "csv") {
		return FormatCSV
	}
	return FormatJSON
}

// ParseUTCOffset parses the compact hour-only offset form used by the CSV
// export ("2", "+2", "-5"). An empty value defaults to UTC. A non-integer
// value wraps ErrValidation.
func ParseUTCOffset(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	hours, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid utc offset %q", ErrValidation, s)
	}
	return hours, nil
}
