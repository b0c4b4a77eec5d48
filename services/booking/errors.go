package booking

import (
	"errors"
)

// InvalidLinkMessage is shown for both unknown and expired tokens so the
// endpoint cannot be used as an oracle for which tokens once existed.
const InvalidLinkMessage = "Invalid or expired link"

var (
	// ErrNotFound means the token does not resolve to any booking.
	ErrNotFound = errors.New("booking token not found")

	// ErrExpired means the token resolved but its expiry has passed.
	// Callers must present it identically to ErrNotFound.
	ErrExpired = errors.New("booking token expired")

	// ErrAlreadyCancelled means the booking is in a terminal state for the
	// requested transition.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

// ValidationError is a rejected input, caught before any state mutation or
// external call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
