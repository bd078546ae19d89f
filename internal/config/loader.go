package config

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, the config file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file at path (JSON, or YAML when the extension is .yaml/.yml)
//  3. env (prefix ELORUN_)
func Load(_ context.Context, path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	// Environment variables: ELORUN_LOG_LEVEL, ELORUN_DEFAULT_RATING, ...
	// Map env keys like ELORUN_BO1_SCORE -> bo1_score (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ELORUN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "elorun_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parserFor picks the file parser by extension. The conventional config is
// JSON; YAML is accepted for hand-written configs.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return kjson.Parser()
	}
}

// validate rejects configurations the engine cannot run on. YAML can encode
// non-finite numbers, so finiteness is checked here rather than assumed.
func (c *Config) validate() error {
	if len(c.KBrackets) == 0 {
		return fmt.Errorf("%w: k_brackets must not be empty", ErrInvalidConfig)
	}
	for i, b := range c.KBrackets {
		if !finite(b.Start) || !finite(b.K) {
			return fmt.Errorf("%w: k_brackets[%d] has non-finite values", ErrInvalidConfig, i)
		}
	}
	for name, v := range map[string]float64{
		"bo1_score":      c.Bo1Score,
		"bo3_score":      c.Bo3Score,
		"bo5_score":      c.Bo5Score,
		"default_rating": c.DefaultRating,
	} {
		if !finite(v) {
			return fmt.Errorf("%w: %s is non-finite", ErrInvalidConfig, name)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
