// Package standings aggregates per-workout positions into category totals.
package standings

import "github.com/matchfit/scorebox/internal/domain/model"

// Totals computes each participant's total score as the sum of its assigned
// positions across every record in the category. Records that have never
// been ranked carry no position yet and contribute 0; they are skipped on
// purpose rather than treated as an error.
//
// The computation is a full pass over the category, never an incremental
// delta, so it is correct after any insert, update or delete without prior
// state. Lower totals are better.
func Totals(records []*model.ResultRecord) map[string]int {
	totals := make(map[string]int)
	for _, r := range records {
		if _, ok := totals[r.ParticipantID]; !ok {
			totals[r.ParticipantID] = 0
		}
		if r.Ranked() {
			totals[r.ParticipantID] += r.Position
		}
	}
	return totals
}

// Completed counts, per participant, the workouts whose record has been
// finalized. The finalized flag feeds only this count; ranking and totals
// include non-finalized results.
func Completed(records []*model.ResultRecord) map[string]int {
	done := make(map[string]int)
	for _, r := range records {
		if r.Finalized {
			done[r.ParticipantID]++
		}
	}
	return done
}
