package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/matchfit/scorebox/internal/domain/resultvalue"
	"github.com/matchfit/scorebox/internal/domain/standings"
)

// WorkoutRow is one line of a workout's result board.
type WorkoutRow struct {
	ParticipantID string
	DisplayName   string
	Position      int
	Value         string
	Finalized     bool
}

// WorkoutResults returns the workout's records ordered by position.
func (s *Service) WorkoutResults(ctx context.Context, categoryID, workoutID string) ([]WorkoutRow, error) {
	workout, err := s.catalog.Workout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.CategoryID != categoryID {
		return nil, ErrWorkoutNotInCategory
	}

	records, err := s.results.ResultsByWorkout(ctx, categoryID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("load workout results: %w", err)
	}

	rows := make([]WorkoutRow, 0, len(records))
	for _, rec := range records {
		name := rec.ParticipantID
		if p, err := s.participants.Participant(ctx, rec.ParticipantID, rec.IsTeam); err == nil {
			name = p.DisplayName
		}
		rows = append(rows, WorkoutRow{
			ParticipantID: rec.ParticipantID,
			DisplayName:   name,
			Position:      rec.Position,
			Value:         resultvalue.Format(rec.Value),
			Finalized:     rec.Finalized,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		return rows[i].ParticipantID < rows[j].ParticipantID
	})
	return rows, nil
}

// ParticipantEntry is one of a participant's results across workouts.
type ParticipantEntry struct {
	CategoryID string
	WorkoutID  string
	Position   int
	Value      string
	Finalized  bool
}

// ParticipantResults returns every entry of one participant, ordered by
// workout id for stable output.
func (s *Service) ParticipantResults(ctx context.Context, participantID string) ([]ParticipantEntry, error) {
	records, err := s.results.ResultsByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("load participant results: %w", err)
	}

	entries := make([]ParticipantEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, ParticipantEntry{
			CategoryID: rec.CategoryID,
			WorkoutID:  rec.WorkoutID,
			Position:   rec.Position,
			Value:      resultvalue.Format(rec.Value),
			Finalized:  rec.Finalized,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].WorkoutID < entries[j].WorkoutID })
	return entries, nil
}

// RankingRow is one line of the category table: a participant's running
// total plus its per-workout positions.
type RankingRow struct {
	ParticipantID     string
	DisplayName       string
	TotalScore        int
	CompletedWorkouts int
	Positions         map[string]int // workoutID -> position
}

// CategoryRanking returns the category's participants ordered by total
// score ascending (lower is better), ties broken by participant ID. Each row
// carries per-workout positions and the count of finalized workouts.
func (s *Service) CategoryRanking(ctx context.Context, categoryID string) ([]RankingRow, error) {
	if _, err := s.catalog.Category(ctx, categoryID); err != nil {
		return nil, err
	}

	records, err := s.results.ResultsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load category results: %w", err)
	}

	completed := standings.Completed(records)
	positions := make(map[string]map[string]int)
	for _, rec := range records {
		if positions[rec.ParticipantID] == nil {
			positions[rec.ParticipantID] = make(map[string]int)
		}
		if rec.Ranked() {
			positions[rec.ParticipantID][rec.WorkoutID] = rec.Position
		}
	}

	participants, err := s.participants.ParticipantsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	rows := make([]RankingRow, 0, len(participants))
	for _, p := range participants {
		perWorkout := positions[p.ID]
		if perWorkout == nil {
			perWorkout = map[string]int{}
		}
		rows = append(rows, RankingRow{
			ParticipantID:     p.ID,
			DisplayName:       p.DisplayName,
			TotalScore:        p.TotalScore,
			CompletedWorkouts: completed[p.ID],
			Positions:         perWorkout,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalScore != rows[j].TotalScore {
			return rows[i].TotalScore < rows[j].TotalScore
		}
		return rows[i].ParticipantID < rows[j].ParticipantID
	})
	return rows, nil
}
