package app

import (
	"errors"

	repository "github.com/matchfit/scorebox/internal/adapters/repository"
	"github.com/matchfit/scorebox/internal/domain/resultvalue"
)

// Machine-readable reason codes surfaced alongside errors.
const (
	ReasonTypeMismatch            = "type_mismatch"
	ReasonInvalidTimeFormat       = "invalid_time_format"
	ReasonWorkoutNotInCategory    = "workout_not_in_category"
	ReasonParticipantTypeMismatch = "participant_type_mismatch"
	ReasonIneligibleParticipant   = "ineligible_participant"
	ReasonDuplicateParticipant    = "duplicate_participant"
	ReasonCategoryBusy            = "category_busy"
	ReasonNotFound                = "not_found"
	ReasonInternal                = "internal"
)

// reasonOf maps an error chain to its reason code.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, resultvalue.ErrTypeMismatch):
		return ReasonTypeMismatch
	case errors.Is(err, resultvalue.ErrInvalidTimeFormat):
		return ReasonInvalidTimeFormat
	case errors.Is(err, ErrWorkoutNotInCategory):
		return ReasonWorkoutNotInCategory
	case errors.Is(err, ErrParticipantTypeMismatch):
		return ReasonParticipantTypeMismatch
	case errors.Is(err, ErrIneligibleParticipant):
		return ReasonIneligibleParticipant
	case errors.Is(err, ErrDuplicateParticipant):
		return ReasonDuplicateParticipant
	case errors.Is(err, ErrCategoryBusy):
		return ReasonCategoryBusy
	case errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrWorkoutNotFound),
		errors.Is(err, repository.ErrParticipantNotFound),
		errors.Is(err, repository.ErrResultNotFound):
		return ReasonNotFound
	default:
		return ReasonInternal
	}
}

// IsNotFound reports whether err is any of the store lookup failures.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrCategoryNotFound) ||
		errors.Is(err, repository.ErrWorkoutNotFound) ||
		errors.Is(err, repository.ErrParticipantNotFound) ||
		errors.Is(err, repository.ErrResultNotFound)
}

// IsValidation reports whether err is a caller mistake (400-equivalent).
func IsValidation(err error) bool {
	switch reasonOf(err) {
	case ReasonTypeMismatch, ReasonInvalidTimeFormat, ReasonWorkoutNotInCategory,
		ReasonParticipantTypeMismatch, ReasonIneligibleParticipant, ReasonDuplicateParticipant:
		return true
	}
	return false
}

// Reason exposes the reason code of an error to transport layers.
func Reason(err error) string {
	return reasonOf(err)
}
