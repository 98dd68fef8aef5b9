package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	recordNotFound := errors.New("record not found")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "account store lookup",
			err:      errs.NewObjectNotFoundError("account", "alice.test"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: alice.test",
		},
		{
			name:     "account store lookup with driver cause",
			err:      errs.NewObjectNotFoundErrorWithCause("account", "bob.test", recordNotFound),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: account, ID is: bob.test (cause: record not found)",
		},
		{
			name:     "payout with a non string id",
			err:      errs.NewObjectNotFoundError("payout", 17),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: %!s(int=17)",
		},
		{
			name:     "unparsable status",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: status",
		},
		{
			name:     "fractional amount",
			err:      errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a whole number of units", "1.5")),
			sentinel: errs.ErrValueIsInvalid,
			message:  `value is invalid: amount (cause: "1.5" is not a whole number of units)`,
		},
		{
			name:     "account id too long",
			err:      errs.NewValueIsOutOfRangeError("account id length", 65, 2, 64),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 65 is account id length, min value is 2, max value is 64",
		},
		{
			name:     "empty settlement batch",
			err:      errs.NewValueIsOutOfRangeError("batchSize", 0, 1, "unbounded"),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is batchSize, min value is 1, max value is unbounded",
		},
		{
			name:     "restored payout status with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("status", 9, 1, 4, errors.New("corrupt row")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 9 is status, min value is 1, max value is 4 (cause: corrupt row)",
		},
		{
			name:     "order id",
			err:      errs.NewValueIsRequiredError("orderID"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: orderID",
		},
		{
			name:     "storage without a hasher",
			err:      errs.NewValueIsRequiredErrorWithCause("hasher", errors.New("namespaces cannot be derived")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: hasher (cause: namespaces cannot be derived)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))
		})
	}
}

func TestObjectNotFoundError_Fields(t *testing.T) {
	cause := errors.New("record not found")
	err := errs.NewObjectNotFoundErrorWithCause("account", "alice.test", cause)

	assert.Equal(t, "account", err.ParamName)
	assert.Equal(t, "alice.test", err.ID)
	assert.Equal(t, cause, err.Cause)
	require.NoError(t, errs.NewObjectNotFoundError("account", "alice.test").Cause)
}

func TestValueIsOutOfRangeError_Fields(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("account id length", 1, 2, 64)

	assert.Equal(t, "account id length", err.ParamName)
	assert.Equal(t, 1, err.Value)
	assert.Equal(t, 2, err.Min)
	assert.Equal(t, 64, err.Max)
	require.NoError(t, err.Cause)
}

func TestValueIsOutOfRangeError_FlattensLineBreaks(t *testing.T) {
	for _, raw := range []string{"alice\r\nforged", "alice\nforged", "alice\rforged"} {
		err := errs.NewValueIsOutOfRangeError("account id", raw, 2, 64)

		assert.Equal(t, "value is invalid: alice forged is account id, min value is 2, max value is 64", err.Error())
	}
}

func TestSentinels(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestWrappedErrorsKeepTheirDetail(t *testing.T) {
	err := fmt.Errorf("confirm order 1: %w", errs.NewObjectNotFoundError("account", "bob.test"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, errs.ErrValueIsInvalid)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "account", notFound.ParamName)
	assert.Equal(t, "bob.test", notFound.ID)

	joined := errors.Join(errs.NewValueIsRequiredError("orderID"), errs.NewValueIsInvalidError("amount"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
