package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCOREBOX_CONFIG is set
//  3. env (prefix SCOREBOX_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SCOREBOX_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SCOREBOX_ADDR, SCOREBOX_LOCK_TIMEOUT_MS, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SCOREBOX_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "scorebox_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.LockTimeoutMS <= 0:
		return nil, fmt.Errorf("%w: lock_timeout_ms must be positive", ErrInvalidConfig)
	case cfg.MaxRankingLimit <= 0:
		return nil, fmt.Errorf("%w: max_ranking_limit must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
