// Package standings provides the rating store and the JSON file adapters
// for the standings, matches, and output documents.
package standings

import (
	"context"
	"sort"
	"sync"
)

// Entry represents one row of a ranked standings listing.
type Entry struct {
	Rank   int
	Team   string
	Rating float64
}

// Store provides read/write access to team ratings.
type Store interface {
	// Get returns the rating for team and whether the team is tracked.
	Get(ctx context.Context, team string) (float64, bool)

	// GetOrCreate returns the rating for team, inserting def first if the
	// team is not tracked yet. Reports whether an insert happened.
	GetOrCreate(ctx context.Context, team string, def float64) (float64, bool)

	// Set stores a new rating for team.
	Set(ctx context.Context, team string, rating float64)

	// Snapshot returns a copy of the full team -> rating mapping.
	Snapshot(ctx context.Context) map[string]float64

	// Count returns the number of tracked teams.
	Count(ctx context.Context) int

	// TopN returns the n highest-rated teams, rating descending, team name
	// ascending on ties. Returns ErrInvalidLimit for n < 1.
	TopN(ctx context.Context, n int) ([]Entry, error)
}

// MemoryStore implements Store with a plain map. A run has a single writer,
// but the mutex keeps the store safe for the metrics/readers case too.
type MemoryStore struct {
	mu      sync.RWMutex
	ratings map[string]float64
}

// NewMemoryStore creates a store seeded from initial. The map is copied so
// later mutation never aliases caller state.
func NewMemoryStore(initial map[string]float64) *MemoryStore {
	ratings := make(map[string]float64, len(initial))
	for team, rating := range initial {
		ratings[team] = rating
	}
	return &MemoryStore{ratings: ratings}
}

// Get returns the rating for team and whether the team is tracked.
func (s *MemoryStore) Get(_ context.Context, team string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.ratings[team]
	return r, ok
}

// GetOrCreate returns the rating for team, inserting def for unseen teams.
func (s *MemoryStore) GetOrCreate(_ context.Context, team string, def float64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.ratings[team]; ok {
		return r, false
	}
	s.ratings[team] = def
	return def, true
}

// Set stores a new rating for team.
func (s *MemoryStore) Set(_ context.Context, team string, rating float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[team] = rating
}

// Snapshot returns a copy of the full team -> rating mapping.
func (s *MemoryStore) Snapshot(_ context.Context) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.ratings))
	for team, rating := range s.ratings {
		out[team] = rating
	}
	return out
}

// Count returns the number of tracked teams.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ratings)
}

// TopN returns the n highest-rated teams.
func (s *MemoryStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	entries := make([]Entry, 0, len(s.ratings))
	for team, rating := range s.ratings {
		entries = append(entries, Entry{Team: team, Rating: rating})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Team < entries[j].Team
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
