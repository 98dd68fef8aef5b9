package kernel

import (
	"fmt"
	"regexp"

	"orderledger/internal/pkg/errs"
)

const (
	// MinAccountIDLength is the shortest accepted account identifier.
	MinAccountIDLength = 2
	// MaxAccountIDLength is the longest accepted account identifier.
	MaxAccountIDLength = 64
)

// ErrAccountIDIsNotConstructed is returned by Validate on a zero AccountID.
var ErrAccountIDIsNotConstructed = errs.NewValueIsRequiredError("AccountID must be created via NewAccountID")

// accountIDPattern accepts dot separated parts of lowercase alphanumerics,
// where "-" and "_" may join alphanumeric runs (e.g. "alice.test", "pizza_shop-1.near").
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// AccountID identifies a ledger account: a customer placing orders or the
// operator receiving payouts. Account identity is supplied by the ledger host
// and is never derived by the ledger.
type AccountID struct {
	value string
}

// NewAccountID validates raw and wraps it.
//
// Returns:
//   - ValueIsRequiredError when raw is empty
//   - ValueIsOutOfRangeError when raw is shorter than 2 or longer than 64 characters
//   - ValueIsInvalidError when raw contains anything but lowercase alphanumerics
//     joined by ".", "-" or "_"
func NewAccountID(raw string) (AccountID, error) {
	if raw == "" {
		return AccountID{}, errs.NewValueIsRequiredError("account id")
	}

	if len(raw) < MinAccountIDLength || len(raw) > MaxAccountIDLength {
		return AccountID{}, errs.NewValueIsOutOfRangeError("account id length", len(raw), MinAccountIDLength, MaxAccountIDLength)
	}

	if !accountIDPattern.MatchString(raw) {
		return AccountID{}, errs.NewValueIsInvalidErrorWithCause("account id", fmt.Errorf("%q has an invalid format", raw))
	}

	return AccountID{value: raw}, nil
}

// MustNewAccountID is NewAccountID for identifiers known to be valid, such as test fixtures.
func MustNewAccountID(raw string) AccountID {
	id, err := NewAccountID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (a AccountID) String() string {
	return a.value
}

// IsEqual reports whether both identifiers name the same account.
func (a AccountID) IsEqual(other AccountID) bool {
	return a.value == other.value
}

// Validate rejects the zero AccountID.
func (a AccountID) Validate() error {
	if a.value == "" {
		return ErrAccountIDIsNotConstructed
	}
	return nil
}
