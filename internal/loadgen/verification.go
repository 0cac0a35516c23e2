package loadgen

import (
	"context"
	"fmt"

	"github.com/matchfit/scorebox/internal/seed"
	"github.com/matchfit/scorebox/pkg/logger"
)

// verifyFixture checks every workout board and category ranking the run
// touched against the scoring invariants: positions dense from 1, and
// each total score equal to the sum of that participant's positions.
func verifyFixture(ctx context.Context, config *Config, fixture *seed.Fixture, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "verifying results")

	client := newHTTPClient(config.Timeout)

	for _, category := range fixture.Categories {
		positions := make(map[string]int)

		for _, workout := range category.Workouts {
			url := config.BaseURL + "/categories/" + category.ID + "/workouts/" + workout.ID + "/results"
			var rows []resultEntry
			if err := fetchJSON(ctx, client, url, &rows); err != nil {
				return fmt.Errorf("failed to fetch workout results: %w", err)
			}

			if err := verifyDense(rows); err != nil {
				return fmt.Errorf("workout %s: %w", workout.ID, err)
			}
			for _, row := range rows {
				positions[row.ParticipantID] += row.Position
			}
			stats.WorkoutsVerified++
		}

		url := config.BaseURL + "/categories/" + category.ID + "/ranking"
		var ranking []rankingEntry
		if err := fetchJSON(ctx, client, url, &ranking); err != nil {
			return fmt.Errorf("failed to fetch category ranking: %w", err)
		}

		if err := verifyTotals(ranking, positions); err != nil {
			return fmt.Errorf("category %s: %w", category.ID, err)
		}

		if config.Verbose {
			log.Info(ctx, "category verified",
				logger.String("category", category.ID),
				logger.Int("rows", len(ranking)))
		}
	}

	log.Info(ctx, "verification completed", logger.Int("workouts", stats.WorkoutsVerified))
	return nil
}

// verifyDense checks that board rows carry positions 1..N exactly once,
// in ascending order.
func verifyDense(rows []resultEntry) error {
	for i, row := range rows {
		if row.Position != i+1 {
			return fmt.Errorf("position %d at board index %d, want %d", row.Position, i, i+1)
		}
		if row.Value == "" {
			return fmt.Errorf("empty value for participant %s", row.ParticipantID)
		}
	}
	return nil
}

// verifyTotals checks every ranking row's total against the positions
// summed from the workout boards.
func verifyTotals(ranking []rankingEntry, positions map[string]int) error {
	if len(ranking) == 0 {
		return fmt.Errorf("empty ranking")
	}

	prev := -1
	for _, row := range ranking {
		want := positions[row.ParticipantID]
		if row.TotalScore != want {
			return fmt.Errorf("participant %s has total %d, want %d", row.ParticipantID, row.TotalScore, want)
		}
		if prev >= 0 && row.TotalScore < prev {
			return fmt.Errorf("ranking not sorted: total %d after %d", row.TotalScore, prev)
		}
		prev = row.TotalScore
	}
	return nil
}
