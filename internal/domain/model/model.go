// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/matchfit/scorebox/internal/domain/resultvalue"
)

// ParticipationMode selects whether a category is contested by teams or
// by individual athletes.
type ParticipationMode string

// Participation modes.
const (
	ModeTeam       ParticipationMode = "team"
	ModeIndividual ParticipationMode = "individual"
)

// Category is a competition bracket with a fixed participation mode and a
// set of workouts. Category data is owned by the registration platform; this
// engine only reads it.
type Category struct {
	ID   string
	Name string
	Mode ParticipationMode
}

// WorkoutSpec is one scored event within a category. Its result type fixes
// both the value representation and the ranking direction.
type WorkoutSpec struct {
	ID         string
	CategoryID string
	Name       string
	ResultType resultvalue.Type
}

// Athlete is an individual participant. Eligibility requires the athlete to
// be active and to have accepted the event terms.
type Athlete struct {
	ID            string
	CategoryID    string
	Name          string
	Active        bool
	TermsAccepted bool
	TotalScore    int
}

// Team is a team participant. Eligibility requires the team to be active.
type Team struct {
	ID         string
	CategoryID string
	Name       string
	Active     bool
	TotalScore int
}

// Participant is the engine's uniform view over a Team or an Athlete.
// TotalScore is owned by the score aggregator; nothing else writes it.
type Participant struct {
	ID          string
	CategoryID  string
	DisplayName string
	IsTeam      bool
	Eligible    bool
	TotalScore  int
}

// AsParticipant converts an Athlete to the uniform participant view.
func (a Athlete) AsParticipant() Participant {
	return Participant{
		ID:          a.ID,
		CategoryID:  a.CategoryID,
		DisplayName: a.Name,
		IsTeam:      false,
		Eligible:    a.Active && a.TermsAccepted,
		TotalScore:  a.TotalScore,
	}
}

// AsParticipant converts a Team to the uniform participant view.
func (t Team) AsParticipant() Participant {
	return Participant{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		DisplayName: t.Name,
		IsTeam:      true,
		Eligible:    t.Active,
		TotalScore:  t.TotalScore,
	}
}

// ResultRecord is the unit of scoring work: one participant's performance in
// one workout of one category. At most one record exists per
// (category, workout, participant) triple; submissions upsert it.
type ResultRecord struct {
	ID            string
	CategoryID    string
	WorkoutID     string
	ParticipantID string
	IsTeam        bool

	// Value matches the workout's result type. A zero Value means the
	// participant has no recorded performance yet and sorts last.
	Value resultvalue.Value

	// Position is the 1-based rank within the workout, rewritten on every
	// ranking run. Zero until the first run.
	Position int

	// Finalized marks the submission as confirmed by a judge. It does not
	// gate ranking or aggregation; it only feeds completion counts.
	Finalized bool

	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// Ranked reports whether the record has been assigned a position.
func (r ResultRecord) Ranked() bool {
	return r.Position > 0
}
