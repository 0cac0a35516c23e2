package app

import (
	"context"
	"fmt"
	"time"

	"github.com/matchfit/scorebox/internal/domain/model"
	"github.com/matchfit/scorebox/internal/domain/ranking"
	"github.com/matchfit/scorebox/internal/domain/resultvalue"
	"github.com/matchfit/scorebox/internal/domain/standings"
	"github.com/matchfit/scorebox/pkg/logger"
	"github.com/matchfit/scorebox/pkg/metrics"
)

// SubmitRequest carries one result submission.
type SubmitRequest struct {
	CategoryID    string
	WorkoutID     string
	ParticipantID string
	IsTeam        bool
	RawValue      string
	Finalized     bool
}

// ResultSummary is the outcome of a submission: the stored record with its
// freshly assigned position.
type ResultSummary struct {
	RecordID      string
	CategoryID    string
	WorkoutID     string
	ParticipantID string
	DisplayName   string
	IsTeam        bool
	Value         string
	Position      int
	Finalized     bool
	Created       bool
}

// SubmitResult validates and stores one result, then re-ranks the workout
// and re-aggregates the category totals. The whole sequence holds the
// category lock; concurrent submissions into the same category serialize or
// fail with ErrCategoryBusy.
func (s *Service) SubmitResult(ctx context.Context, req SubmitRequest) (ResultSummary, error) {
	if err := s.locks.acquire(ctx, req.CategoryID, s.lockTimeout); err != nil {
		return ResultSummary{}, err
	}
	defer s.locks.release(req.CategoryID)

	workout, participant, err := s.validateSubmission(ctx, req.CategoryID, req.WorkoutID, req.ParticipantID, req.IsTeam)
	if err != nil {
		metrics.RecordResultRejected(reasonOf(err))
		return ResultSummary{}, err
	}

	value, err := resultvalue.Parse(workout.ResultType, req.RawValue)
	if err != nil {
		metrics.RecordResultRejected(reasonOf(err))
		return ResultSummary{}, err
	}

	stored, created, err := s.results.Upsert(ctx, model.ResultRecord{
		CategoryID:    req.CategoryID,
		WorkoutID:     req.WorkoutID,
		ParticipantID: req.ParticipantID,
		IsTeam:        req.IsTeam,
		Value:         value,
		Finalized:     req.Finalized,
	})
	if err != nil {
		return ResultSummary{}, fmt.Errorf("upsert result: %w", err)
	}

	if err := s.rerank(ctx, req.CategoryID, req.WorkoutID); err != nil {
		return ResultSummary{}, err
	}

	// Re-read for the position assigned by the ranking run.
	stored, err = s.results.Result(ctx, req.WorkoutID, req.ParticipantID)
	if err != nil {
		return ResultSummary{}, fmt.Errorf("reload result: %w", err)
	}

	metrics.RecordResultSubmitted()
	s.logger.Info(ctx, "result submitted",
		logger.String("category", req.CategoryID),
		logger.String("workout", req.WorkoutID),
		logger.String("participant", req.ParticipantID),
		logger.Int("position", stored.Position),
		logger.Bool("created", created),
	)

	return summarize(stored, participant.DisplayName, created), nil
}

// RemoveResult deletes a participant's record from a workout, then re-ranks
// the remaining records and re-aggregates the category.
func (s *Service) RemoveResult(ctx context.Context, categoryID, workoutID, participantID string, isTeam bool) error {
	if err := s.locks.acquire(ctx, categoryID, s.lockTimeout); err != nil {
		return err
	}
	defer s.locks.release(categoryID)

	workout, err := s.catalog.Workout(ctx, workoutID)
	if err != nil {
		return err
	}
	if workout.CategoryID != categoryID {
		return ErrWorkoutNotInCategory
	}
	if _, err := s.participants.Participant(ctx, participantID, isTeam); err != nil {
		return err
	}

	if err := s.results.Delete(ctx, workoutID, participantID); err != nil {
		return err
	}

	if err := s.rerank(ctx, categoryID, workoutID); err != nil {
		return err
	}

	metrics.RecordResultRemoved()
	s.logger.Info(ctx, "result removed",
		logger.String("category", categoryID),
		logger.String("workout", workoutID),
		logger.String("participant", participantID),
	)
	return nil
}

// BatchItem is one entry of a batch submission into a single workout.
type BatchItem struct {
	ParticipantID string
	IsTeam        bool
	RawValue      string
	Finalized     bool
}

// BatchFailure reports one batch item that was not applied.
type BatchFailure struct {
	ParticipantID string
	Reason        string
	Err           error
}

// BatchOutcome reports the accepted and failed items of a batch.
type BatchOutcome struct {
	Accepted []ResultSummary
	Failed   []BatchFailure
}

// SubmitBatch applies many results for one workout, ranking and aggregating
// once at the end instead of per item. Item validation failures are
// collected and reported without aborting the remaining items; callers must
// inspect the outcome, since a partially applied batch is the documented
// behavior, not an error.
func (s *Service) SubmitBatch(ctx context.Context, categoryID, workoutID string, items []BatchItem) (BatchOutcome, error) {
	var out BatchOutcome

	if err := s.locks.acquire(ctx, categoryID, s.lockTimeout); err != nil {
		return out, err
	}
	defer s.locks.release(categoryID)

	seen := make(map[string]bool, len(items))
	applied := make(map[string]ResultSummary, len(items))

	for _, item := range items {
		if seen[item.ParticipantID] {
			out.Failed = append(out.Failed, batchFailure(item.ParticipantID, ErrDuplicateParticipant))
			metrics.RecordBatchItem("failed")
			continue
		}
		seen[item.ParticipantID] = true

		workout, participant, err := s.validateSubmission(ctx, categoryID, workoutID, item.ParticipantID, item.IsTeam)
		if err != nil {
			out.Failed = append(out.Failed, batchFailure(item.ParticipantID, err))
			metrics.RecordBatchItem("failed")
			continue
		}

		value, err := resultvalue.Parse(workout.ResultType, item.RawValue)
		if err != nil {
			out.Failed = append(out.Failed, batchFailure(item.ParticipantID, err))
			metrics.RecordBatchItem("failed")
			continue
		}

		stored, created, err := s.results.Upsert(ctx, model.ResultRecord{
			CategoryID:    categoryID,
			WorkoutID:     workoutID,
			ParticipantID: item.ParticipantID,
			IsTeam:        item.IsTeam,
			Value:         value,
			Finalized:     item.Finalized,
		})
		if err != nil {
			out.Failed = append(out.Failed, batchFailure(item.ParticipantID, err))
			metrics.RecordBatchItem("failed")
			continue
		}

		applied[item.ParticipantID] = summarize(stored, participant.DisplayName, created)
		metrics.RecordBatchItem("ok")
		metrics.RecordResultSubmitted()
	}

	if len(applied) > 0 {
		if err := s.rerank(ctx, categoryID, workoutID); err != nil {
			return out, err
		}
	}

	// Collect summaries with their post-ranking positions, in input order.
	for _, item := range items {
		summary, ok := applied[item.ParticipantID]
		if !ok {
			continue
		}
		rec, err := s.results.Result(ctx, workoutID, item.ParticipantID)
		if err == nil {
			summary.Position = rec.Position
		}
		out.Accepted = append(out.Accepted, summary)
		delete(applied, item.ParticipantID)
	}

	s.logger.Info(ctx, "batch submitted",
		logger.String("category", categoryID),
		logger.String("workout", workoutID),
		logger.Int("accepted", len(out.Accepted)),
		logger.Int("failed", len(out.Failed)),
	)
	return out, nil
}

// RankWorkout recomputes the positions of one workout and returns them in
// rank order. Re-running with unchanged inputs yields identical positions.
func (s *Service) RankWorkout(ctx context.Context, categoryID, workoutID string) ([]ranking.Placement, error) {
	start := time.Now()

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

	placements := ranking.Rank(workout.ResultType, records)
	for _, p := range placements {
		if err := s.results.SetPosition(ctx, workoutID, p.ParticipantID, p.Position); err != nil {
			return nil, fmt.Errorf("persist position: %w", err)
		}
	}

	metrics.RecordRankingRun(float64(time.Since(start).Milliseconds()))
	return placements, nil
}

// RecalculateCategoryScores recomputes every participant's total score in
// the category as the sum of its current positions, writes the totals back
// and returns them. Participants with no remaining records reset to zero.
func (s *Service) RecalculateCategoryScores(ctx context.Context, categoryID string) (map[string]int, error) {
	start := time.Now()

	if _, err := s.catalog.Category(ctx, categoryID); err != nil {
		return nil, err
	}

	records, err := s.results.ResultsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load category results: %w", err)
	}

	totals := standings.Totals(records)
	teamness := make(map[string]bool, len(records))
	for _, r := range records {
		teamness[r.ParticipantID] = r.IsTeam
	}

	for participantID, total := range totals {
		if err := s.participants.SetTotalScore(ctx, participantID, teamness[participantID], total); err != nil {
			return nil, fmt.Errorf("persist total: %w", err)
		}
	}

	// Participants whose records were all removed keep a stale total
	// unless reset here.
	all, err := s.participants.ParticipantsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	for _, p := range all {
		if _, ok := totals[p.ID]; ok || p.TotalScore == 0 {
			continue
		}
		if err := s.participants.SetTotalScore(ctx, p.ID, p.IsTeam, 0); err != nil {
			return nil, fmt.Errorf("reset total: %w", err)
		}
		totals[p.ID] = 0
	}

	metrics.RecordAggregationRun(float64(time.Since(start).Milliseconds()))
	return totals, nil
}

// rerank runs ranking then aggregation for the workout's category, the fixed
// order every write path follows.
func (s *Service) rerank(ctx context.Context, categoryID, workoutID string) error {
	if _, err := s.RankWorkout(ctx, categoryID, workoutID); err != nil {
		return err
	}
	if _, err := s.RecalculateCategoryScores(ctx, categoryID); err != nil {
		return err
	}
	return nil
}

// validateSubmission runs the shared checks of steps 1-3: resolve category
// and workout, check the workout/category and mode pairing, resolve the
// participant and check registration and eligibility.
func (s *Service) validateSubmission(ctx context.Context, categoryID, workoutID, participantID string, isTeam bool) (model.WorkoutSpec, model.Participant, error) {
	category, err := s.catalog.Category(ctx, categoryID)
	if err != nil {
		return model.WorkoutSpec{}, model.Participant{}, err
	}
	workout, err := s.catalog.Workout(ctx, workoutID)
	if err != nil {
		return model.WorkoutSpec{}, model.Participant{}, err
	}
	if workout.CategoryID != category.ID {
		return model.WorkoutSpec{}, model.Participant{}, ErrWorkoutNotInCategory
	}
	if isTeam != (category.Mode == model.ModeTeam) {
		return model.WorkoutSpec{}, model.Participant{}, ErrParticipantTypeMismatch
	}

	participant, err := s.participants.Participant(ctx, participantID, isTeam)
	if err != nil {
		return model.WorkoutSpec{}, model.Participant{}, err
	}
	if participant.CategoryID != category.ID || !participant.Eligible {
		return model.WorkoutSpec{}, model.Participant{}, ErrIneligibleParticipant
	}
	return workout, participant, nil
}

func summarize(rec model.ResultRecord, displayName string, created bool) ResultSummary {
	return ResultSummary{
		RecordID:      rec.ID,
		CategoryID:    rec.CategoryID,
		WorkoutID:     rec.WorkoutID,
		ParticipantID: rec.ParticipantID,
		DisplayName:   displayName,
		IsTeam:        rec.IsTeam,
		Value:         resultvalue.Format(rec.Value),
		Position:      rec.Position,
		Finalized:     rec.Finalized,
		Created:       created,
	}
}

func batchFailure(participantID string, err error) BatchFailure {
	return BatchFailure{
		ParticipantID: participantID,
		Reason:        reasonOf(err),
		Err:           err,
	}
}
