package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matchfit/scorebox/internal/seed"
	"github.com/matchfit/scorebox/pkg/logger"
)

// Run executes a complete load run against a seeded service: submit
// randomized results for every participant in the fixture, then verify
// the boards and rankings the service computed.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting scorebox load run",
		logger.String("baseURL", config.BaseURL),
		logger.String("fixture", config.FixturePath),
		logger.Int("rounds", config.Rounds),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	fixture, err := seed.LoadFile(config.FixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	subs := buildSubmissions(fixture, config.Rounds)
	if len(subs) == 0 {
		return fmt.Errorf("fixture produced no submissions")
	}

	if err := submitAll(ctx, config, subs, stats); err != nil {
		return fmt.Errorf("result submission failed: %w", err)
	}

	if err := verifyFixture(ctx, config, fixture, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	log.Info(ctx, "load run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is reachable.
func checkServiceHealth(ctx context.Context, config *Config) error {
	log := logger.Get()
	log.Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	log.Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var successRate, perSecond float64
	if stats.Submitted > 0 {
		successRate = float64(stats.Successful) / float64(stats.Submitted) * 100
	}
	if stats.Duration > 0 {
		perSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("rejected", stats.Rejected),
		logger.Int("failed", stats.Failed),
		logger.Int("workoutsVerified", stats.WorkoutsVerified),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("submissionsPerSecond", perSecond))
}
