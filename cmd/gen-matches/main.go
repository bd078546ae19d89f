package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/elorun/internal/genmatches"
	"github.com/okian/elorun/pkg/logger"
)

// Default generation parameters.
const (
	defaultTeams         = 16
	defaultMatches       = 100
	defaultUnseededShare = 0.25
)

func main() {
	var (
		teams         = flag.Int("teams", defaultTeams, "Number of teams to generate")
		matches       = flag.Int("matches", defaultMatches, "Number of matches to generate")
		seed          = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		unseeded      = flag.Float64("unseeded", defaultUnseededShare, "Fraction of teams left out of the standings file")
		standingsFile = flag.String("standings-out", "standings.json", "Standings fixture output path")
		matchesFile   = flag.String("matches-out", "matches.json", "Matches fixture output path")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := &genmatches.Config{
		Teams:         *teams,
		Matches:       *matches,
		Seed:          *seed,
		UnseededShare: *unseeded,
		StandingsFile: *standingsFile,
		MatchesFile:   *matchesFile,
	}

	if err := genmatches.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "fixture generation failed", logger.Error(err))
		os.Exit(1)
	}
}
