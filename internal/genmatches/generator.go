package genmatches

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/okian/elorun/internal/domain/model"
	"github.com/okian/elorun/pkg/logger"
)

// Generation constants.
const (
	baseRating         = 1000.0
	ratingSpread       = 400.0
	teamNameIDLength   = 8
	fixtureFilePerm    = 0o644
	minTeamsForMatches = 2
)

// Series kind mix: Bo1 is the common format, Bo5 the rare one.
var seriesMix = []model.SeriesKind{
	model.SeriesBo1, model.SeriesBo1, model.SeriesBo1,
	model.SeriesBo3, model.SeriesBo3,
	model.SeriesBo5,
}

// Generator produces random fixtures from a Config.
type Generator struct {
	cfg *Config
	rng *rand.Rand
}

// NewGenerator creates a generator. A zero seed is replaced with the
// current time so repeated unseeded runs differ.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg.Teams < minTeamsForMatches {
		return nil, fmt.Errorf("%w: need at least %d teams", ErrInvalidFixture, minTeamsForMatches)
	}
	if cfg.Matches < 0 {
		return nil, fmt.Errorf("%w: negative match count", ErrInvalidFixture)
	}
	if cfg.UnseededShare < 0 || cfg.UnseededShare >= 1 {
		return nil, fmt.Errorf("%w: unseeded share must be in [0, 1)", ErrInvalidFixture)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // fixtures only, no crypto use
	}, nil
}

// TeamNames invents unique team names with a uuid-derived suffix.
func (g *Generator) TeamNames() []string {
	names := make([]string, g.cfg.Teams)
	for i := range names {
		names[i] = "team-" + uuid.NewString()[:teamNameIDLength]
	}
	return names
}

// Standings assigns a starting rating around the base to a share of teams.
// Teams past the cutoff are left unseeded on purpose.
func (g *Generator) Standings(teams []string) map[string]float64 {
	cutoff := len(teams) - int(float64(len(teams))*g.cfg.UnseededShare)
	ratings := make(map[string]float64, cutoff)
	for _, team := range teams[:cutoff] {
		ratings[team] = baseRating + (g.rng.Float64()-0.5)*ratingSpread
	}
	return ratings
}

// Matches generates random decided matches between distinct teams.
func (g *Generator) Matches(teams []string) []model.Match {
	matches := make([]model.Match, g.cfg.Matches)
	for i := range matches {
		w := g.rng.Intn(len(teams))
		l := g.rng.Intn(len(teams) - 1)
		if l >= w {
			l++
		}
		matches[i] = model.Match{
			Winner: teams[w],
			Loser:  teams[l],
			Series: seriesMix[g.rng.Intn(len(seriesMix))],
		}
	}
	return matches
}

// Run generates both fixture files.
func Run(ctx context.Context, cfg *Config) error {
	g, err := NewGenerator(cfg)
	if err != nil {
		return err
	}

	teams := g.TeamNames()
	ratings := g.Standings(teams)
	matches := g.Matches(teams)

	if err := writeJSON(cfg.StandingsFile, ratings); err != nil {
		return err
	}
	if err := writeJSON(cfg.MatchesFile, matches); err != nil {
		return err
	}

	logger.Get().Info(ctx, "fixtures generated",
		logger.Int("teams", len(teams)),
		logger.Int("seeded", len(ratings)),
		logger.Int("matches", len(matches)),
		logger.String("standingsFile", cfg.StandingsFile),
		logger.String("matchesFile", cfg.MatchesFile),
	)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, fixtureFilePerm); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}
