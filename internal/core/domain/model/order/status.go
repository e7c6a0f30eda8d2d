package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

// ErrOrderAlreadyCancelled is returned when cancelling an order that has
// already been cancelled. The transition is one-way and happens exactly once,
// so a repeated cancel must not restore stock a second time.
var ErrOrderAlreadyCancelled = errors.New("order is already cancelled")

// Status represents the lifecycle state of an order.
// It implements a state machine with a single, irreversible transition:
//
//	Ordered ──> Cancelled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when an order is placed.
	// Stock has been committed against the order's lines.
	Ordered

	// Cancelled indicates the order was cancelled and the committed stock
	// has been restored. This is a final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ordered:   "Ordered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "Ordered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Ordered and Cancelled; Unknown (0) and any other
// values are invalid. Used to check Status values arriving from storage
// or the API boundary.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as used by the search API.
// The match is exact; unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Ordered -> Cancelled
//
// Invalid transitions:
//   - Cancelled -> Cancelled (returns ErrOrderAlreadyCancelled)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns the new status on a valid transition, or (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, ErrOrderAlreadyCancelled
	}

	if s != Ordered {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}

	return Cancelled, nil
}
