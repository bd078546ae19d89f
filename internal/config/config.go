// Package config defines run configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading layers defaults, the config file, then environment overrides.
// - External errors must be wrapped via this package's error helpers.
package config

// Bracket is one K-factor bracket: the K applied from rating Start upward.
type Bracket struct {
	Start float64 `koanf:"start" json:"start"`
	K     float64 `koanf:"k" json:"k"`
}

// Config contains process configuration for a rating run.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Bo1Score, Bo3Score, and Bo5Score weight the Elo score delta by
	// series kind.
	Bo1Score float64 `koanf:"bo1_score"`
	Bo3Score float64 `koanf:"bo3_score"`
	Bo5Score float64 `koanf:"bo5_score"`

	// KBrackets maps rating floors to K-factors. Must be non-empty for a
	// valid run; order in the file does not matter.
	KBrackets []Bracket `koanf:"k_brackets"`

	// DefaultRating is assigned to teams that appear in a match but not
	// in the standings input.
	DefaultRating float64 `koanf:"default_rating"`
}

// New creates a Config holding the defaults that the config file and
// environment are layered over. Series weights default to 1 (no scaling);
// the bracket table has no default and must come from the file.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Bo1Score:      1.0,
		Bo3Score:      1.0,
		Bo5Score:      1.0,
		DefaultRating: 1000,
	}
}
