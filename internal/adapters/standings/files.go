package standings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/elorun/internal/domain/model"
)

// Output file permission constant.
const (
	outputFilePermission = 0o644
)

// LoadStandings reads a standings document: a JSON object mapping team name
// to current rating. An empty object is a valid, empty standings set.
func LoadStandings(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read standings %s: %w", path, err)
	}
	ratings := make(map[string]float64)
	if err := json.Unmarshal(data, &ratings); err != nil {
		return nil, fmt.Errorf("parse standings %s: %w", path, err)
	}
	return ratings, nil
}

// LoadMatches reads an ordered match list. Array order is processing order.
// Elements are decoded one at a time so a malformed entry is reported with
// its index.
func LoadMatches(path string) ([]model.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read matches %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse matches %s: %w", path, err)
	}

	matches := make([]model.Match, 0, len(raw))
	for i, elem := range raw {
		var m model.Match
		if err := json.Unmarshal(elem, &m); err != nil {
			return nil, fmt.Errorf("parse matches %s: match %d: %w", path, i, err)
		}
		if m.Winner == "" || m.Loser == "" {
			return nil, fmt.Errorf("parse matches %s: match %d: %w", path, i, ErrMissingTeamName)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// SaveStandings writes the team -> rating mapping as pretty-printed JSON.
// The document is staged in a temp file and renamed into place, so an
// existing output file is never left half written.
func SaveStandings(path string, ratings map[string]float64) error {
	data, err := json.MarshalIndent(ratings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode standings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".standings-*.json")
	if err != nil {
		return fmt.Errorf("stage standings %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write standings %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write standings %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, outputFilePermission); err != nil {
		return fmt.Errorf("write standings %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write standings %s: %w", path, err)
	}
	return nil
}
