package standings

import "errors"

// Sentinel kinds for standings errors.
var (
	ErrInvalidLimit    = errors.New("invalid standings limit")
	ErrMissingTeamName = errors.New("missing team name")
)
