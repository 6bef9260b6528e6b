package booking

import (
	"errors"
	"fmt"

	"clearbook/services/coverage"
	"clearbook/services/validation"
)

// Sentinel errors the handlers branch on.
var (
	// ErrSessionNotFound covers both unknown and expired sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrWrongStep is returned when an operation is attempted out of order.
	ErrWrongStep = errors.New("operation not valid for current step")
	// ErrNoService is returned when the draft has no priced service yet.
	ErrNoService = errors.New("no service selected")
)

// OutOfCoverageError blocks the details step when the postcode fails the
// coverage gate. It carries the full verdict so the caller can render the
// message and alternate calls-to-action.
type OutOfCoverageError struct {
	Result coverage.Result
}

func (e *OutOfCoverageError) Error() string {
	return "postcode outside instant-booking coverage"
}

// DetailsValidationError carries field-level errors from the details step.
type DetailsValidationError struct {
	Errors validation.Errors
}

func (e *DetailsValidationError) Error() string {
	return fmt.Sprintf("customer details failed validation (%d fields)", len(e.Errors))
}

// PaymentFailedError surfaces a provider failure; the session stays on the
// payment step and the user may retry.
type PaymentFailedError struct {
	Message string
}

func (e *PaymentFailedError) Error() string {
	if e.Message == "" {
		return "payment failed, please try again"
	}
	return e.Message
}
