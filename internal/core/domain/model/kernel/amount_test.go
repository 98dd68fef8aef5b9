package kernel_test

import (
	"testing"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("parses values wider than 64 bits", func(t *testing.T) {
		a, err := kernel.ParseAmount("2000000000000000000000")
		require.NoError(t, err)
		assert.Equal(t, "2000000000000000000000", a.String())
	})

	t.Run("leading zeros are normalized", func(t *testing.T) {
		a, err := kernel.ParseAmount("007")
		require.NoError(t, err)
		assert.Equal(t, "7", a.String())
	})

	t.Run("zero", func(t *testing.T) {
		a, err := kernel.ParseAmount("0")
		require.NoError(t, err)
		assert.True(t, a.IsZero())
		assert.True(t, a.IsEqual(kernel.ZeroAmount))
	})

	t.Run("empty is required", func(t *testing.T) {
		_, err := kernel.ParseAmount("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non digit input is invalid", func(t *testing.T) {
		for _, s := range []string{"-1", "+1", "1.5", "1e21", " 1", "1 ", "abc", "0x10"} {
			_, err := kernel.ParseAmount(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestAmount_Arithmetic(t *testing.T) {
	fee := kernel.MustParseAmount("1000000000000000000000")
	paid := kernel.MustParseAmount("2500000000000000000000")

	t.Run("sub", func(t *testing.T) {
		net, err := paid.Sub(fee)
		require.NoError(t, err)
		assert.Equal(t, "1500000000000000000000", net.String())
	})

	t.Run("sub to zero", func(t *testing.T) {
		net, err := fee.Sub(fee)
		require.NoError(t, err)
		assert.True(t, net.IsZero())
	})

	t.Run("sub below zero fails", func(t *testing.T) {
		_, err := fee.Sub(paid)
		require.ErrorIs(t, err, kernel.ErrAmountIsNegative)
	})

	t.Run("add and compare", func(t *testing.T) {
		sum := fee.Add(fee)
		assert.Equal(t, "2000000000000000000000", sum.String())
		assert.Equal(t, 1, sum.Cmp(fee))
		assert.Equal(t, -1, fee.Cmp(sum))
		assert.True(t, fee.LessThan(sum))
		assert.False(t, sum.LessThan(fee))
	})
}

func TestAmountFromDecimal(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		a, err := kernel.AmountFromDecimal(decimal.RequireFromString("1000000000000000000000"))
		require.NoError(t, err)
		assert.Equal(t, "1000000000000000000000", a.String())
		assert.True(t, a.Decimal().Equal(decimal.RequireFromString("1e21")))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := kernel.AmountFromDecimal(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fraction", func(t *testing.T) {
		_, err := kernel.AmountFromDecimal(decimal.RequireFromString("1.5"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMustParseAmount_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustParseAmount("1.5") })
}
