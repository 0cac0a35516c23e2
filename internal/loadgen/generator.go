package loadgen

import (
	"fmt"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matchfit/scorebox/internal/domain/resultvalue"
	"github.com/matchfit/scorebox/internal/seed"
)

// File permission constants.
const (
	fixtureFilePermission = 0600
)

// Value generation ranges.
const (
	repsMin         = 10
	repsMax         = 500
	weightKiloMin   = 40
	weightKiloMax   = 300
	timeSecondsMin  = 60
	timeSecondsMax  = 3600
	secondsPerMin   = 60
	halfKiloPercent = 50
)

// resultTypes is the rotation used when generating workouts.
var resultTypes = []resultvalue.Type{
	resultvalue.TypeTime,
	resultvalue.TypeReps,
	resultvalue.TypeWeight,
}

// GenerateFixture builds a random seed fixture with the given shape.
// Categories alternate between individual and team mode.
func GenerateFixture(numCategories, numWorkouts, numParticipants int) *seed.Fixture {
	fixture := &seed.Fixture{
		Categories: make([]seed.Category, 0, numCategories),
	}

	for c := 0; c < numCategories; c++ {
		teamMode := c%2 == 1
		category := seed.Category{
			ID:   uuid.NewString(),
			Name: gofakeit.Adjective() + " " + gofakeit.NounCommon(),
			Mode: "individual",
		}
		if teamMode {
			category.Mode = "team"
		}

		for w := 0; w < numWorkouts; w++ {
			category.Workouts = append(category.Workouts, seed.Workout{
				ID:         uuid.NewString(),
				Name:       gofakeit.Verb() + " " + gofakeit.NounCommon(),
				ResultType: string(resultTypes[w%len(resultTypes)]),
			})
		}

		for p := 0; p < numParticipants; p++ {
			if teamMode {
				category.Teams = append(category.Teams, seed.Team{
					ID:     uuid.NewString(),
					Name:   gofakeit.Adjective() + " " + gofakeit.Animal(),
					Active: true,
				})
				continue
			}
			category.Athletes = append(category.Athletes, seed.Athlete{
				ID:            uuid.NewString(),
				Name:          gofakeit.Name(),
				Active:        true,
				TermsAccepted: true,
			})
		}

		fixture.Categories = append(fixture.Categories, category)
	}

	return fixture
}

// WriteFixture serializes a fixture to a YAML file.
func WriteFixture(fixture *seed.Fixture, path string) error {
	data, err := yaml.Marshal(fixture)
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, fixtureFilePermission); err != nil {
		return fmt.Errorf("failed to write fixture file: %w", err)
	}
	return nil
}

// buildSubmissions prepares randomized result submissions for every
// participant and workout in the fixture, rounds times over. Later
// rounds overwrite earlier ones server-side, which exercises the
// re-rank path.
func buildSubmissions(fixture *seed.Fixture, rounds int) []submission {
	var subs []submission
	for _, category := range fixture.Categories {
		team := category.Mode == "team"
		for r := 0; r < rounds; r++ {
			for _, workout := range category.Workouts {
				resultType := resultvalue.Type(workout.ResultType)
				for _, athlete := range category.Athletes {
					subs = append(subs, submission{
						CategoryID: category.ID,
						WorkoutID:  workout.ID,
						Body: submitBody{
							ParticipantID: athlete.ID,
							Team:          false,
							RawValue:      randomRawValue(resultType),
							Finalized:     r == rounds-1,
						},
					})
				}
				if !team {
					continue
				}
				for _, t := range category.Teams {
					subs = append(subs, submission{
						CategoryID: category.ID,
						WorkoutID:  workout.ID,
						Body: submitBody{
							ParticipantID: t.ID,
							Team:          true,
							RawValue:      randomRawValue(resultType),
							Finalized:     r == rounds-1,
						},
					})
				}
			}
		}
	}
	return subs
}

// randomRawValue produces a submittable raw value for the given type.
func randomRawValue(t resultvalue.Type) string {
	switch t {
	case resultvalue.TypeReps:
		return strconv.Itoa(gofakeit.Number(repsMin, repsMax))
	case resultvalue.TypeWeight:
		kilos := gofakeit.Number(weightKiloMin, weightKiloMax)
		if gofakeit.Number(1, 100) <= halfKiloPercent {
			return strconv.Itoa(kilos) + ".5"
		}
		return strconv.Itoa(kilos)
	case resultvalue.TypeTime:
		total := gofakeit.Number(timeSecondsMin, timeSecondsMax)
		return fmt.Sprintf("%d:%02d", total/secondsPerMin, total%secondsPerMin)
	default:
		return strconv.Itoa(gofakeit.Number(repsMin, repsMax))
	}
}
