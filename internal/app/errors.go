package app

import "errors"

// Validation sentinels surfaced to callers as 400-equivalents, plus the
// retryable lock failure. Store lookups reuse the repository sentinels.
var (
	// ErrWorkoutNotInCategory rejects a submission whose workout belongs
	// to a different category than the one addressed.
	ErrWorkoutNotInCategory = errors.New("workout does not belong to category")

	// ErrParticipantTypeMismatch rejects a team submission into an
	// individual category or vice versa.
	ErrParticipantTypeMismatch = errors.New("participant type does not match category mode")

	// ErrIneligibleParticipant rejects submissions for participants that
	// are not registered in the category or not in an eligible state.
	ErrIneligibleParticipant = errors.New("participant not eligible to compete")

	// ErrDuplicateParticipant rejects a batch that lists the same
	// participant more than once.
	ErrDuplicateParticipant = errors.New("duplicate participant in batch")

	// ErrCategoryBusy reports that the per-category lock could not be
	// acquired in time. The whole submission is safe to retry.
	ErrCategoryBusy = errors.New("category busy, retry submission")
)
