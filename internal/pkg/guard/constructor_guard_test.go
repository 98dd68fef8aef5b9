package guard_test

import (
	"errors"
	"testing"

	"orderledger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard used the way commands use it.
func TestConstructorGuardEmbedded(t *testing.T) {
	errConfirmNotConstructed := errors.New("confirm must be created via its constructor")

	type confirm struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newConfirm := func(orderID string) (confirm, error) {
		if orderID == "" {
			return confirm{}, errors.New("order id is required")
		}
		return confirm{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		c, err := newConfirm("order-1")
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errConfirmNotConstructed))
	})

	t.Run("rejected_construction_returns_zero_value", func(t *testing.T) {
		c, err := newConfirm("")
		require.Error(t, err)
		require.ErrorIs(t, c.guard.Validate(errConfirmNotConstructed), errConfirmNotConstructed)
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		c, err := newConfirm("order-2")
		require.NoError(t, err)
		cp := c
		require.NoError(t, cp.guard.Validate(errConfirmNotConstructed))
	})
}
