package kernel

import (
	"fmt"
	"regexp"

	"orderledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// ErrAmountIsNegative is returned when a subtraction would go below zero.
var ErrAmountIsNegative = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("result is negative"))

// Amount is a non-negative whole number of the smallest currency unit.
// Amounts routinely exceed 64 bits (the storage fee alone is 10^21), so the
// value is held as an arbitrary precision decimal with a zero exponent.
//
// The zero value is a valid amount of 0.
type Amount struct {
	value decimal.Decimal
}

// ZeroAmount is the amount 0.
var ZeroAmount = Amount{}

// ParseAmount parses a base-10 string of digits. Signs, fractions, exponents
// and surrounding whitespace are rejected.
//
// Example:
//
//	total, err := kernel.ParseAmount("2000000000000000000000")
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, errs.NewValueIsRequiredError("amount")
	}

	if !digitsPattern.MatchString(s) {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a whole number of units", s))
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return Amount{value: d}, nil
}

// MustParseAmount is ParseAmount for constants.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromDecimal restores an amount from persistence. The decimal must be a
// non-negative integer.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount", d.String(), 0, "unbounded")
	}
	if !d.IsInteger() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not a whole number of units", d))
	}
	return Amount{value: d}, nil
}

// Decimal exposes the underlying value for persistence adapters.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sub returns a - other, or ErrAmountIsNegative when other is larger than a.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.LessThan(other) {
		return Amount{}, ErrAmountIsNegative
	}
	return Amount{value: a.value.Sub(other.value)}, nil
}

// Add returns a + other.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than other.
func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(other.value)
}

// IsEqual reports exact equality.
func (a Amount) IsEqual(other Amount) bool {
	return a.Cmp(other) == 0
}

// LessThan reports whether a < other.
func (a Amount) LessThan(other Amount) bool {
	return a.Cmp(other) < 0
}

// IsZero reports whether the amount is 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String renders the amount as plain digits, without exponent or fraction.
func (a Amount) String() string {
	return a.value.StringFixed(0)
}
