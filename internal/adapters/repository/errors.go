package repository

import "errors"

// Sentinel kinds for store lookups. Callers match with errors.Is.
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrResultNotFound      = errors.New("result not found")
)
