package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/matchfit/scorebox/internal/loadgen"
)

// Default configuration constants.
const (
	defaultCategories   = 4
	defaultWorkouts     = 3
	defaultParticipants = 25
	defaultRounds       = 2
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultRunTimeout   = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		fixturePath  = flag.String("fixture", "", "Seed fixture the service was started with")
		generatePath = flag.String("generate", "", "Write a random seed fixture to this path and exit")
		categories   = flag.Int("categories", defaultCategories, "Categories in a generated fixture")
		workouts     = flag.Int("workouts", defaultWorkouts, "Workouts per category in a generated fixture")
		participants = flag.Int("participants", defaultParticipants, "Participants per category in a generated fixture")
		rounds       = flag.Int("rounds", defaultRounds, "Submissions per participant per workout")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadgen.ShowHelp()
		return
	}

	if err := loadgen.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	if *generatePath != "" {
		fixture := loadgen.GenerateFixture(*categories, *workouts, *participants)
		if err := loadgen.WriteFixture(fixture, *generatePath); err != nil {
			os.Stderr.WriteString("Failed to write fixture: " + err.Error() + "\n")
			os.Exit(1)
		}
		os.Stdout.WriteString("Fixture written to " + *generatePath + "\n")
		return
	}

	if *fixturePath == "" {
		os.Stderr.WriteString("Either -fixture or -generate is required, see -help\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &loadgen.Config{
		BaseURL:     *baseURL,
		FixturePath: *fixturePath,
		Rounds:      *rounds,
		Workers:     *workers,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := loadgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Load run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
