package appointments

import (
	"errors"
	"strings"
)

var (
	// ErrSessionNotFound means the session never existed or its TTL ran out
	ErrSessionNotFound = errors.New("appointment session not found")

	// ErrSubmissionInFlight rejects a duplicate submit while one is running
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrAlreadyConfirmed rejects mutations after confirmation (reset excepted)
	ErrAlreadyConfirmed = errors.New("booking already confirmed")

	// ErrNotConfirmed rejects reset before the wizard completed
	ErrNotConfirmed = errors.New("booking is not confirmed")
)

// GuardError is a failed step guard: the warning is surfaced, the step
// pointer does not move.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string {
	return e.Message
}

// ValidationError carries the aggregated contact-form failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
