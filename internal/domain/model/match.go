// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
)

// SeriesKind identifies the match format. Exactly three kinds exist;
// anything else is rejected at the JSON boundary.
type SeriesKind string

// Valid series kinds.
const (
	SeriesBo1 SeriesKind = "Bo1"
	SeriesBo3 SeriesKind = "Bo3"
	SeriesBo5 SeriesKind = "Bo5"
)

// Valid reports whether s is one of the three known series kinds.
func (s SeriesKind) Valid() bool {
	switch s {
	case SeriesBo1, SeriesBo3, SeriesBo5:
		return true
	}
	return false
}

// UnmarshalJSON decodes a series kind, rejecting unknown values so that
// malformed input fails at deserialization rather than deep in the engine.
func (s *SeriesKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("series kind must be a string: %w", err)
	}
	kind := SeriesKind(raw)
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSeries, raw)
	}
	*s = kind
	return nil
}

// Match represents a single decided match between two teams.
// Fields mirror the matches input file schema. The winner/loser pair is
// caller-guaranteed to be distinct; the engine does not check it.
type Match struct {
	Winner string     `json:"winner"`
	Loser  string     `json:"loser"`
	Series SeriesKind `json:"series"`
}
