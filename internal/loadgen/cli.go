package loadgen

import (
	"fmt"
	"os"

	"github.com/matchfit/scorebox/pkg/logger"
)

// SetupLogging initializes logging for a load run.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the load generator.
func ShowHelp() {
	os.Stdout.WriteString(`Scorebox Load Generator
=======================

Submits randomized competition results against a running scorebox
service and verifies the rankings it computes.

Usage:
  go run ./cmd/loadgen [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -fixture string
        Seed fixture the service was started with (required unless -generate)
  -generate string
        Write a random seed fixture to this path and exit
  -categories int
        Categories in a generated fixture (default 4)
  -workouts int
        Workouts per category in a generated fixture (default 3)
  -participants int
        Participants per category in a generated fixture (default 25)
  -rounds int
        Submissions per participant per workout (default 2)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate a fixture, then start the service with it
  go run ./cmd/loadgen -generate fixture.yaml
  SCOREBOX_SEED_FILE=fixture.yaml go run ./cmd

  # Run against the seeded service
  go run ./cmd/loadgen -fixture fixture.yaml -rounds 3 -workers 16
`)
}
