package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// Colour is the closed enumeration for the LED demo feature.
type Colour string

const (
	ColourRed   Colour = "red"
	ColourGreen Colour = "green"
	ColourBlue  Colour = "blue"
)

// parseColour matches a label case-insensitively and rejects everything else.
func parseColour(s string) (Colour, error) {
	switch strings.ToLower(s) {
	case string(ColourRed):
		return ColourRed, nil
	case string(ColourGreen):
		return ColourGreen, nil
	case string(ColourBlue):
		return ColourBlue, nil
	}
	return "", fmt.Errorf("unknown colour %q", s)
}

// ColourCell is the single-owner cell holding the process-wide LED colour.
// It is the only shared mutable state in the server and is guarded by a
// plain mutex; the telemetry core never touches it.
type ColourCell struct {
	mu     sync.Mutex
	colour Colour
}

// NewColourCell returns a cell initialised to red, the boot state of the LED.
func NewColourCell() *ColourCell {
	return &ColourCell{colour: ColourRed}
}

// Get returns the current colour.
func (c *ColourCell) Get() Colour {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colour
}

// Set replaces the current colour.
func (c *ColourCell) Set(colour Colour) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.colour = colour
}

// colourBody is the wire form of the LED state. Clients may spell the field
// either "colour" or "color".
type colourBody struct {
	Colour *string `json:"colour"`
	Color  *string `json:"color"`
}

// GetLED handles GET /api/led_test.
func (s *Server) GetLED(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]Colour{"colour": s.colour.Get()})
}

// PostLED handles POST /api/led_test.
func (s *Server) PostLED(w http.ResponseWriter, r *http.Request) {
	var body colourBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadBody(w)
		return
	}

	label := body.Colour
	if label == nil {
		label = body.Color
	}
	if label == nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "missing required field")
		return
	}

	colour, err := parseColour(*label)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "unknown colour")
		return
	}

	s.colour.Set(colour)
	w.WriteHeader(http.StatusNoContent)
}
