// Package repository defines the stores the scoring engine reads and writes,
// plus an in-memory implementation.
//
// Categories, workouts and participants are owned by the registration
// platform; the engine consumes them read-only apart from the
// aggregator-owned total score. Result records are owned by the engine.
package repository

import (
	"context"

	"github.com/matchfit/scorebox/internal/domain/model"
)

// CatalogStore provides read access to categories and their workouts, plus
// the write hooks used by fixtures and tests.
type CatalogStore interface {
	// Category returns a category by id. Returns ErrCategoryNotFound.
	Category(ctx context.Context, id string) (model.Category, error)

	// Workout returns a workout by id. Returns ErrWorkoutNotFound.
	Workout(ctx context.Context, id string) (model.WorkoutSpec, error)

	// WorkoutsByCategory lists the workouts of one category.
	WorkoutsByCategory(ctx context.Context, categoryID string) ([]model.WorkoutSpec, error)

	PutCategory(ctx context.Context, c model.Category) error
	PutWorkout(ctx context.Context, w model.WorkoutSpec) error
}

// ParticipantStore provides access to teams and athletes through the uniform
// participant view. SetTotalScore is reserved for the score aggregator.
type ParticipantStore interface {
	// Participant resolves a team or athlete by id.
	// Returns ErrParticipantNotFound.
	Participant(ctx context.Context, id string, isTeam bool) (model.Participant, error)

	// ParticipantsByCategory lists every participant registered in a category.
	ParticipantsByCategory(ctx context.Context, categoryID string) ([]model.Participant, error)

	// SetTotalScore writes the aggregator-computed total onto a participant.
	SetTotalScore(ctx context.Context, id string, isTeam bool, total int) error

	PutAthlete(ctx context.Context, a model.Athlete) error
	PutTeam(ctx context.Context, t model.Team) error
}

// ResultStore holds the engine-owned result records. At most one record
// exists per (workout, participant) pair; Upsert enforces that.
type ResultStore interface {
	// Upsert creates or updates the record for its workout+participant pair.
	// The stored record (with id and timestamps settled) is returned along
	// with whether it was newly created.
	Upsert(ctx context.Context, rec model.ResultRecord) (model.ResultRecord, bool, error)

	// Result returns the record for one workout+participant pair.
	// Returns ErrResultNotFound.
	Result(ctx context.Context, workoutID, participantID string) (model.ResultRecord, error)

	// ResultsByWorkout returns copies of every record of one workout.
	ResultsByWorkout(ctx context.Context, categoryID, workoutID string) ([]*model.ResultRecord, error)

	// ResultsByCategory returns copies of every record of one category.
	ResultsByCategory(ctx context.Context, categoryID string) ([]*model.ResultRecord, error)

	// ResultsByParticipant returns every record of one participant.
	ResultsByParticipant(ctx context.Context, participantID string) ([]model.ResultRecord, error)

	// SetPosition writes a ranking-assigned position onto a stored record.
	SetPosition(ctx context.Context, workoutID, participantID string, position int) error

	// Delete removes the record for one workout+participant pair.
	// Returns ErrResultNotFound when absent.
	Delete(ctx context.Context, workoutID, participantID string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
