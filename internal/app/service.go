// Package service orchestrates a rating run: it loads the standings and
// match inputs, drives the update engine, and persists the result.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/okian/elorun/internal/adapters/standings"
	"github.com/okian/elorun/internal/config"
	"github.com/okian/elorun/internal/domain/rating"
	"github.com/okian/elorun/pkg/logger"
	"github.com/okian/elorun/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service runs the full pipeline for one invocation. Output is written only
// after every match has been applied; a failed run leaves any existing
// output file untouched.
type Service struct {
	cfg *config.Config

	matchesPath   string
	standingsPath string
	outputPath    string

	// topN > 0 prints the leading teams after a successful run.
	topN int
	out  io.Writer

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the run configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithPaths sets the matches, standings, and output file paths.
func WithPaths(matches, standingsFile, output string) Option {
	return func(s *Service) {
		s.matchesPath = matches
		s.standingsPath = standingsFile
		s.outputPath = output
	}
}

// WithTopN enables printing the n leading teams after the run.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithOutput redirects the top-N listing, e.g. to a buffer in tests.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one rating run end to end.
func (s *Service) Run(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		metrics.RecordRunFailure()
		return err
	}
	return nil
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.cfg == nil {
		return fmt.Errorf("%w: no configuration provided", config.ErrInvalidConfig)
	}

	runID := uuid.NewString()
	log := s.logger.Named("run")
	log.Info(ctx, "starting rating run",
		logger.String("runID", runID),
		logger.String("matches", s.matchesPath),
		logger.String("standings", s.standingsPath),
		logger.String("output", s.outputPath),
	)

	engine, err := s.buildEngine()
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	initial, err := standings.LoadStandings(s.standingsPath)
	if err != nil {
		return err
	}
	matches, err := standings.LoadMatches(s.matchesPath)
	if err != nil {
		return err
	}
	store := standings.NewMemoryStore(initial)

	log.Info(ctx, "inputs loaded",
		logger.String("runID", runID),
		logger.Int("teams", store.Count(ctx)),
		logger.Int("matches", len(matches)),
	)

	if err := engine.Apply(ctx, matches, store); err != nil {
		return fmt.Errorf("apply matches from %s: %w", s.matchesPath, err)
	}

	if err := standings.SaveStandings(s.outputPath, store.Snapshot(ctx)); err != nil {
		return err
	}

	elapsed := time.Since(started)
	metrics.ObserveRunDuration(float64(elapsed.Nanoseconds()) / nanosecondsPerMillisecond)
	log.Info(ctx, "rating run finished",
		logger.String("runID", runID),
		logger.Int("teams", store.Count(ctx)),
		logger.Int("matches", len(matches)),
		logger.String("elapsed", elapsed.String()),
	)

	if s.topN > 0 {
		if err := s.printTopN(ctx, store); err != nil {
			return err
		}
	}
	return nil
}

// buildEngine translates the loaded configuration into engine inputs.
func (s *Service) buildEngine() (*rating.Engine, error) {
	brackets := make([]rating.Bracket, len(s.cfg.KBrackets))
	for i, b := range s.cfg.KBrackets {
		brackets[i] = rating.Bracket{Start: b.Start, K: b.K}
	}
	table, err := rating.NewBracketTable(brackets)
	if err != nil {
		return nil, err
	}
	weights := rating.SeriesWeights{
		Bo1: s.cfg.Bo1Score,
		Bo3: s.cfg.Bo3Score,
		Bo5: s.cfg.Bo5Score,
	}
	return rating.NewEngine(table, weights,
		rating.WithDefaultRating(s.cfg.DefaultRating),
		rating.WithLogger(s.logger),
	)
}

// printTopN writes the leading teams to the configured output stream.
func (s *Service) printTopN(ctx context.Context, store standings.Store) error {
	n := s.topN
	if count := store.Count(ctx); n > count {
		n = count
	}
	if n == 0 {
		return nil
	}
	entries, err := store.TopN(ctx, n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(s.out, "%4d  %-32s %10.2f\n", e.Rank, e.Team, e.Rating); err != nil {
			return fmt.Errorf("write top-%d listing: %w", s.topN, err)
		}
	}
	return nil
}
