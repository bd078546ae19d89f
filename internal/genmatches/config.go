// Package genmatches generates random standings and match-list fixtures for
// exercising the rating CLI end to end.
package genmatches

// Config controls fixture generation.
type Config struct {
	// Teams is the number of teams to invent.
	Teams int

	// Matches is the number of match records to generate.
	Matches int

	// Seed makes generation reproducible. Zero picks a time-based seed.
	Seed int64

	// UnseededShare is the fraction of teams left out of the standings
	// file so the engine's default-rating path gets exercised.
	UnseededShare float64

	// StandingsFile and MatchesFile are the output paths.
	StandingsFile string
	MatchesFile   string
}
