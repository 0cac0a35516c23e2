package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchfit/scorebox/internal/adapters/repository"
	"github.com/matchfit/scorebox/internal/domain/model"
	"github.com/matchfit/scorebox/internal/domain/resultvalue"
)

func seedStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	ctx := context.Background()
	s := repository.NewMemoryStore()

	require.NoError(t, s.PutCategory(ctx, model.Category{ID: "rx", Name: "RX", Mode: model.ModeIndividual}))
	require.NoError(t, s.PutWorkout(ctx, model.WorkoutSpec{ID: "w1", CategoryID: "rx", Name: "Fran", ResultType: resultvalue.TypeTime}))
	require.NoError(t, s.PutWorkout(ctx, model.WorkoutSpec{ID: "w2", CategoryID: "rx", Name: "Max Clean", ResultType: resultvalue.TypeWeight}))
	require.NoError(t, s.PutAthlete(ctx, model.Athlete{ID: "ath-1", CategoryID: "rx", Name: "Ana", Active: true, TermsAccepted: true}))
	require.NoError(t, s.PutTeam(ctx, model.Team{ID: "team-1", CategoryID: "rx", Name: "Box United", Active: true}))
	return s
}

func TestCatalogLookups(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	c, err := s.Category(ctx, "rx")
	require.NoError(t, err)
	assert.Equal(t, model.ModeIndividual, c.Mode)

	_, err = s.Category(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	w, err := s.Workout(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, resultvalue.TypeTime, w.ResultType)

	_, err = s.Workout(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrWorkoutNotFound)

	ws, err := s.WorkoutsByCategory(ctx, "rx")
	require.NoError(t, err)
	assert.Len(t, ws, 2)
}

func TestParticipantLookups(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	p, err := s.Participant(ctx, "ath-1", false)
	require.NoError(t, err)
	assert.True(t, p.Eligible)
	assert.False(t, p.IsTeam)

	p, err = s.Participant(ctx, "team-1", true)
	require.NoError(t, err)
	assert.True(t, p.IsTeam)

	// An athlete id is not visible through the team namespace.
	_, err = s.Participant(ctx, "ath-1", true)
	assert.ErrorIs(t, err, repository.ErrParticipantNotFound)

	all, err := s.ParticipantsByCategory(ctx, "rx")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetTotalScore(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	require.NoError(t, s.SetTotalScore(ctx, "ath-1", false, 7))
	p, err := s.Participant(ctx, "ath-1", false)
	require.NoError(t, err)
	assert.Equal(t, 7, p.TotalScore)

	assert.ErrorIs(t, s.SetTotalScore(ctx, "ghost", false, 1), repository.ErrParticipantNotFound)
}

func TestUpsertSemantics(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	rec := model.ResultRecord{
		CategoryID:    "rx",
		WorkoutID:     "w1",
		ParticipantID: "ath-1",
		Value:         resultvalue.Seconds(155),
	}

	stored, created, err := s.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.SubmittedAt.IsZero())

	// Resubmitting updates value and finalized, keeps identity, never
	// duplicates the row.
	rec.Value = resultvalue.Seconds(140)
	rec.Finalized = true
	updated, created, err := s.Upsert(ctx, rec)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, 140, updated.Value.Seconds())
	assert.True(t, updated.Finalized)
	assert.Equal(t, 1, s.Count(ctx))
}

func TestPositionsAndDeletion(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	_, _, err := s.Upsert(ctx, model.ResultRecord{
		CategoryID: "rx", WorkoutID: "w1", ParticipantID: "ath-1",
		Value: resultvalue.Seconds(155),
	})
	require.NoError(t, err)

	require.NoError(t, s.SetPosition(ctx, "w1", "ath-1", 3))
	got, err := s.Result(ctx, "w1", "ath-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Position)

	assert.ErrorIs(t, s.SetPosition(ctx, "w1", "ghost", 1), repository.ErrResultNotFound)

	require.NoError(t, s.Delete(ctx, "w1", "ath-1"))
	_, err = s.Result(ctx, "w1", "ath-1")
	assert.ErrorIs(t, err, repository.ErrResultNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "w1", "ath-1"), repository.ErrResultNotFound)
}

func TestQueriesReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := seedStore(t)

	_, _, err := s.Upsert(ctx, model.ResultRecord{
		CategoryID: "rx", WorkoutID: "w1", ParticipantID: "ath-1",
		Value: resultvalue.Seconds(155),
	})
	require.NoError(t, err)

	recs, err := s.ResultsByWorkout(ctx, "rx", "w1")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Mutating the returned copy must not leak into the store.
	recs[0].Position = 99
	stored, err := s.Result(ctx, "w1", "ath-1")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Position)
}

func TestClockOverride(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s := repository.NewMemoryStore(repository.WithClock(func() time.Time { return fixed }))

	stored, _, err := s.Upsert(ctx, model.ResultRecord{
		CategoryID: "rx", WorkoutID: "w1", ParticipantID: "ath-1",
		Value: resultvalue.Reps(10),
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, stored.SubmittedAt)
	assert.Equal(t, fixed, stored.UpdatedAt)
}
