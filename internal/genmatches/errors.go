package genmatches

import "errors"

// Sentinel kinds for fixture generation errors.
var (
	ErrInvalidFixture = errors.New("invalid fixture parameters")
)
