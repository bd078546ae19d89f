package rating

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/elorun/internal/domain/model"
	"github.com/okian/elorun/pkg/logger"
	"github.com/okian/elorun/pkg/metrics"
)

// Elo formula constants.
const (
	eloBase  = 10
	eloScale = 400

	winScore  = 1.0
	loseScore = 0.0

	// DefaultRating is assigned to a team first seen in a match rather
	// than in the standings input.
	DefaultRating = 1000.0
)

// Store is the engine's view of the standings: current ratings keyed by
// team name. GetOrCreate inserts the default for teams not yet tracked and
// reports whether it did so.
type Store interface {
	GetOrCreate(ctx context.Context, team string, def float64) (rating float64, created bool)
	Set(ctx context.Context, team string, rating float64)
}

// Engine applies match results to a standings store, strictly in input
// order. Each update observes the ratings as left by all prior matches.
type Engine struct {
	brackets      *BracketTable
	weights       SeriesWeights
	defaultRating float64
	logger        logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithDefaultRating sets the rating assigned to first-seen teams.
func WithDefaultRating(r float64) Option {
	return func(e *Engine) {
		if isFinite(r) {
			e.defaultRating = r
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine constructs an engine from a normalized bracket table and series
// weights. The weights are validated here so a bad configuration fails
// before any match is applied.
func NewEngine(brackets *BracketTable, weights SeriesWeights, opts ...Option) (*Engine, error) {
	if brackets == nil || brackets.Len() == 0 {
		return nil, ErrEmptyBrackets
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		brackets:      brackets,
		weights:       weights,
		defaultRating: DefaultRating,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Apply runs every match through the Elo update, mutating store in place.
// On error the store may hold a partially updated state; callers must not
// persist it (the app layer writes output only after a clean pass).
func (e *Engine) Apply(ctx context.Context, matches []model.Match, store Store) error {
	for i, m := range matches {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("apply aborted at match %d: %w", i, err)
		}
		if err := e.applyOne(ctx, m, store); err != nil {
			return fmt.Errorf("match %d (%s vs %s): %w", i, m.Winner, m.Loser, err)
		}
	}
	return nil
}

// applyOne performs the Elo update for a single decided match.
func (e *Engine) applyOne(ctx context.Context, m model.Match, store Store) error {
	winnerRating, created := store.GetOrCreate(ctx, m.Winner, e.defaultRating)
	if created {
		metrics.RecordTeamDefaulted()
	}
	loserRating, created := store.GetOrCreate(ctx, m.Loser, e.defaultRating)
	if created {
		metrics.RecordTeamDefaulted()
	}

	expectedWinner := expectedScore(winnerRating, loserRating)
	expectedLoser := 1 - expectedWinner

	// K is rating-dependent: each side resolves through its own bracket.
	winnerK, err := e.brackets.KFor(winnerRating)
	if err != nil {
		return err
	}
	loserK, err := e.brackets.KFor(loserRating)
	if err != nil {
		return err
	}

	weight, err := e.weights.WeightFor(m.Series)
	if err != nil {
		return err
	}

	newWinnerRating := winnerRating + winnerK*weight*(winScore-expectedWinner)
	newLoserRating := loserRating + loserK*weight*(loseScore-expectedLoser)
	if !isFinite(newWinnerRating) || !isFinite(newLoserRating) {
		return fmt.Errorf("%w: updated ratings %v, %v", ErrNonFiniteValue, newWinnerRating, newLoserRating)
	}

	store.Set(ctx, m.Winner, newWinnerRating)
	store.Set(ctx, m.Loser, newLoserRating)

	metrics.RecordMatchApplied(string(m.Series))
	metrics.ObserveRatingDelta(math.Abs(newWinnerRating - winnerRating))
	metrics.ObserveRatingDelta(math.Abs(newLoserRating - loserRating))

	if e.logger != nil {
		e.logger.Debug(ctx, "applied match",
			logger.String("winner", m.Winner),
			logger.String("loser", m.Loser),
			logger.String("series", string(m.Series)),
			logger.Float64("winnerRating", newWinnerRating),
			logger.Float64("loserRating", newLoserRating),
		)
	}
	return nil
}

// expectedScore is the logistic win probability of a side rated r against
// an opponent rated opp.
func expectedScore(r, opp float64) float64 {
	return 1 / (1 + math.Pow(eloBase, (opp-r)/eloScale))
}
