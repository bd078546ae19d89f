// Package rating implements the Elo update engine: bracket-based K-factor
// resolution, series weighting, and the sequential per-match rating update.
package rating

import (
	"fmt"
	"math"
	"sort"
)

// Bracket maps a rating floor to the K-factor applied from that floor up.
type Bracket struct {
	Start float64
	K     float64
}

// BracketTable resolves a K-factor from a rating. The table is normalized
// (sorted ascending by Start) at construction, so resolution does not depend
// on the order entries arrived in.
type BracketTable struct {
	entries []Bracket
}

// NewBracketTable builds a normalized bracket table. An empty table is a
// configuration error: K-factor resolution would be undefined.
func NewBracketTable(entries []Bracket) (*BracketTable, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyBrackets
	}
	normalized := make([]Bracket, len(entries))
	copy(normalized, entries)
	for _, b := range normalized {
		if !isFinite(b.Start) || !isFinite(b.K) {
			return nil, fmt.Errorf("%w: bracket {start: %v, k: %v}", ErrNonFiniteValue, b.Start, b.K)
		}
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Start < normalized[j].Start
	})
	return &BracketTable{entries: normalized}, nil
}

// KFor returns the K-factor of the highest bracket whose Start does not
// exceed rating. Ratings below every bracket floor fall through to the
// lowest bracket, which acts as an implicit floor.
func (t *BracketTable) KFor(rating float64) (float64, error) {
	if !isFinite(rating) {
		return 0, fmt.Errorf("%w: rating %v", ErrNonFiniteValue, rating)
	}
	// First entry with Start > rating; the qualifying bracket is the one before it.
	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Start > rating
	})
	if idx == 0 {
		return t.entries[0].K, nil
	}
	return t.entries[idx-1].K, nil
}

// Len returns the number of brackets in the table.
func (t *BracketTable) Len() int {
	return len(t.entries)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
