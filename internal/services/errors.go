package services

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrForbidden            = errors.New("forbidden")
	ErrJobNotFound          = errors.New("job not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrAlreadyApplied       = errors.New("already applied to this job")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAssessmentRequired   = errors.New("assessment required before submitting")
	ErrAssessmentInProgress = errors.New("assessment already in progress")

	// ErrAssessmentUnavailable, ErrMalformedAssessment and ErrAssessmentCanceled are
	// returned together with the fallback result.
	ErrAssessmentUnavailable = errors.New("assessment service unavailable")
	ErrMalformedAssessment   = errors.New("assessment response malformed")
	ErrAssessmentCanceled    = errors.New("assessment canceled")

	ErrPersistence = errors.New("failed to persist state")
)
