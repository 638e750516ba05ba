package bookings

import "errors"

var (
	// ErrSessionNotFound means the session never existed or its TTL ran out
	ErrSessionNotFound = errors.New("bus session not found")

	// ErrBusNotFound means the bus ID is not in the session's result set
	ErrBusNotFound = errors.New("bus not found in search results")

	// ErrSeatNotFound means the seat ID is not in the frozen layout
	ErrSeatNotFound = errors.New("seat not found in layout")

	// ErrBookingNotFound means no booking exists under the reference,
	// or the retention sweep already purged it
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentInFlight rejects a duplicate checkout while one is running
	ErrPaymentInFlight = errors.New("payment already in progress")

	// ErrAlreadyConfirmed rejects mutations after the booking completed
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
)

// GuardError is a missing-predecessor failure: the step the client asked
// for depends on state the session does not have, so the client is sent
// back to the flow's entry point.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string {
	return e.Message
}

// SearchValidationError carries the per-field search form failures
type SearchValidationError struct {
	Fields map[string]string
}

func (e *SearchValidationError) Error() string {
	return "search validation failed"
}

// CheckoutValidationError is the first checkout failure found; the
// checks short-circuit, so there is never more than one.
type CheckoutValidationError struct {
	Message string
}

func (e *CheckoutValidationError) Error() string {
	return e.Message
}
