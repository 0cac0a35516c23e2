// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New to build a Config with defaults.
// - Layer defaults, optional YAML file and env vars in Load.
// - External errors are wrapped via this package's sentinels.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LockTimeoutMS bounds how long a submission waits for the
	// per-category lock before failing as retryable.
	LockTimeoutMS int `koanf:"lock_timeout_ms"`

	// MaxRankingLimit caps GET ranking/result listings.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// SeedFile optionally points at a YAML fixture loaded at boot with
	// categories, workouts and participants.
	SeedFile string `koanf:"seed_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		LockTimeoutMS:   2_000,
		MaxRankingLimit: 500,
		SeedFile:        "",
	}
}
