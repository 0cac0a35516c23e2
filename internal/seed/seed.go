// Package seed loads a YAML fixture of categories, workouts and
// participants into the stores at boot. The registration platform owns this
// data in production; the fixture stands in for it so the engine can run
// standalone.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	repository "github.com/matchfit/scorebox/internal/adapters/repository"
	"github.com/matchfit/scorebox/internal/domain/model"
	"github.com/matchfit/scorebox/internal/domain/resultvalue"
)

// Fixture mirrors the YAML layout of a seed file.
type Fixture struct {
	Categories []Category `yaml:"categories"`
}

// Category describes one bracket with its workouts and participants.
type Category struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode"` // "team" or "individual"
	Workouts []Workout `yaml:"workouts"`
	Athletes []Athlete `yaml:"athletes"`
	Teams    []Team    `yaml:"teams"`
}

// Workout describes one scored event.
type Workout struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	ResultType string `yaml:"result_type"` // REPS, WEIGHT or TIME
}

// Athlete describes one individual participant.
type Athlete struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Active        bool   `yaml:"active"`
	TermsAccepted bool   `yaml:"terms_accepted"`
}

// Team describes one team participant.
type Team struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

// LoadFile reads and validates a fixture file.
func LoadFile(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	for _, c := range f.Categories {
		if c.ID == "" {
			return fmt.Errorf("category %q: %w", c.Name, ErrMissingID)
		}
		mode := model.ParticipationMode(c.Mode)
		if mode != model.ModeTeam && mode != model.ModeIndividual {
			return fmt.Errorf("category %q mode %q: %w", c.ID, c.Mode, ErrInvalidMode)
		}
		for _, w := range c.Workouts {
			if w.ID == "" {
				return fmt.Errorf("category %q workout %q: %w", c.ID, w.Name, ErrMissingID)
			}
			if !resultvalue.Type(w.ResultType).Valid() {
				return fmt.Errorf("workout %q result type %q: %w", w.ID, w.ResultType, ErrInvalidResultType)
			}
		}
		for _, a := range c.Athletes {
			if a.ID == "" {
				return fmt.Errorf("category %q athlete %q: %w", c.ID, a.Name, ErrMissingID)
			}
		}
		for _, tm := range c.Teams {
			if tm.ID == "" {
				return fmt.Errorf("category %q team %q: %w", c.ID, tm.Name, ErrMissingID)
			}
		}
	}
	return nil
}

// Apply writes the fixture into the stores.
func Apply(ctx context.Context, f *Fixture, catalog repository.CatalogStore, participants repository.ParticipantStore) error {
	for _, c := range f.Categories {
		if err := catalog.PutCategory(ctx, model.Category{
			ID:   c.ID,
			Name: c.Name,
			Mode: model.ParticipationMode(c.Mode),
		}); err != nil {
			return fmt.Errorf("seed category %q: %w", c.ID, err)
		}
		for _, w := range c.Workouts {
			if err := catalog.PutWorkout(ctx, model.WorkoutSpec{
				ID:         w.ID,
				CategoryID: c.ID,
				Name:       w.Name,
				ResultType: resultvalue.Type(w.ResultType),
			}); err != nil {
				return fmt.Errorf("seed workout %q: %w", w.ID, err)
			}
		}
		for _, a := range c.Athletes {
			if err := participants.PutAthlete(ctx, model.Athlete{
				ID:            a.ID,
				CategoryID:    c.ID,
				Name:          a.Name,
				Active:        a.Active,
				TermsAccepted: a.TermsAccepted,
			}); err != nil {
				return fmt.Errorf("seed athlete %q: %w", a.ID, err)
			}
		}
		for _, tm := range c.Teams {
			if err := participants.PutTeam(ctx, model.Team{
				ID:         tm.ID,
				CategoryID: c.ID,
				Name:       tm.Name,
				Active:     tm.Active,
			}); err != nil {
				return fmt.Errorf("seed team %q: %w", tm.ID, err)
			}
		}
	}
	return nil
}
