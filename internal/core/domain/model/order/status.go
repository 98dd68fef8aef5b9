package order

import (
	"fmt"

	"orderledger/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──confirm──> Confirmed ──confirm──> Confirmed
//
// On the wire the status is a boolean: false for Placed, true for Confirmed.
type Status int

const (
	// Unknown represents an invalid or uninitialized status.
	Unknown Status = iota

	// Placed is the status of every newly created order.
	Placed

	// Confirmed marks an order its owner has confirmed. It is terminal.
	Confirmed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Confirmed: "Confirmed",
	}
}

// Validate accepts Placed and Confirmed.
func (s Status) Validate() error {
	if s != Placed && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Bool returns the wire representation: true only for Confirmed.
func (s Status) Bool() bool {
	return s == Confirmed
}

// StatusFromBool maps the wire representation back to a Status.
func StatusFromBool(confirmed bool) Status {
	if confirmed {
		return Confirmed
	}
	return Placed
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Placed -> Confirmed
//   - Confirmed -> Confirmed (no-op)
//
// Unknown cannot be confirmed.
func (s Status) Confirm() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Confirmed, nil
}
