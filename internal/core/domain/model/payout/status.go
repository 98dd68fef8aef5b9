package payout

import (
	"orderledger/internal/pkg/errs"
)

// Status is the settlement state of a payout.
type Status int

const (
	StatusUnknown Status = iota
	// StatusIssued payouts wait for the settlement job.
	StatusIssued
	// StatusSending payouts were claimed by a settlement run and handed to the
	// ledger host. A payout left Sending is never transferred again.
	StatusSending
	// StatusSettled payouts were accepted by the ledger host.
	StatusSettled
	// StatusFailed payouts were rejected by the ledger host and are never retried.
	StatusFailed
)

var statusStrings = map[Status]string{
	StatusUnknown: "Unknown",
	StatusIssued:  "Issued",
	StatusSending: "Sending",
	StatusSettled: "Settled",
	StatusFailed:  "Failed",
}

// Validate rejects StatusUnknown and values outside of the enumeration.
func (s Status) Validate() error {
	if s < StatusIssued || s > StatusFailed {
		return errs.NewValueIsOutOfRangeError("status", s, StatusIssued, StatusFailed)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return statusStrings[StatusUnknown]
}

// IsFinal reports whether the settlement job is done with the payout.
func (s Status) IsFinal() bool {
	return s == StatusSettled || s == StatusFailed
}

// ParseStatus is the inverse of String.
func ParseStatus(raw string) (Status, error) {
	for s, str := range statusStrings {
		if s != StatusUnknown && str == raw {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}
