package ledger_test

import (
	"testing"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.NewLedger(kernel.MustNewAccountID("operator.test"), prefixHasher{})
	require.NoError(t, err)
	return l
}

func TestNewLedger(t *testing.T) {
	t.Run("keeps the operator", func(t *testing.T) {
		l := newLedger(t)

		require.NoError(t, l.Validate())
		assert.Equal(t, "operator.test", l.Operator().String())
		assert.Equal(t, 0, l.Accounts())
	})

	t.Run("requires an operator", func(t *testing.T) {
		_, err := ledger.NewLedger(kernel.AccountID{}, prefixHasher{})
		require.ErrorIs(t, err, kernel.ErrAccountIDIsNotConstructed)
	})

	t.Run("requires a hasher", func(t *testing.T) {
		_, err := ledger.NewLedger(kernel.MustNewAccountID("operator.test"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLedger_GetStore(t *testing.T) {
	alice := kernel.MustNewAccountID("alice.test")

	t.Run("creates an empty handle on first access without committing it", func(t *testing.T) {
		l := newLedger(t)

		store, err := l.GetStore(alice)

		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
		assert.Equal(t, ledger.Namespace("ns:alice.test"), store.Namespace())
		_, found := l.FindStore(alice)
		assert.False(t, found)
	})

	t.Run("is idempotent", func(t *testing.T) {
		l := newLedger(t)

		first, err := l.GetStore(alice)
		require.NoError(t, err)
		second, err := l.GetStore(alice)
		require.NoError(t, err)

		assert.Equal(t, first.Namespace(), second.Namespace())
	})
}

func TestLedger_PutStore(t *testing.T) {
	alice := kernel.MustNewAccountID("alice.test")
	bob := kernel.MustNewAccountID("bob.test")

	t.Run("handles are invisible until put", func(t *testing.T) {
		l := newLedger(t)
		store, err := l.GetStore(alice)
		require.NoError(t, err)
		require.NoError(t, store.Put(newOrder(t, "1")))

		_, found := l.FindStore(alice)
		require.False(t, found)

		require.NoError(t, l.PutStore(store))

		committed, found := l.FindStore(alice)
		require.True(t, found)
		assert.Equal(t, 1, committed.Len())
		assert.Equal(t, 1, l.Accounts())
	})

	t.Run("mutating a committed handle needs another put", func(t *testing.T) {
		l := newLedger(t)
		store, _ := l.GetStore(alice)
		require.NoError(t, store.Put(newOrder(t, "1")))
		require.NoError(t, l.PutStore(store))

		handle, _ := l.FindStore(alice)
		o, _ := handle.Get("1")
		require.NoError(t, o.Confirm())

		stale, _ := l.FindStore(alice)
		staleOrder, _ := stale.Get("1")
		assert.False(t, staleOrder.IsConfirmed())

		require.NoError(t, l.PutStore(handle))
		fresh, _ := l.FindStore(alice)
		freshOrder, _ := fresh.Get("1")
		assert.True(t, freshOrder.IsConfirmed())
	})

	t.Run("stores are isolated per account", func(t *testing.T) {
		l := newLedger(t)
		store, _ := l.GetStore(alice)
		require.NoError(t, store.Put(newOrder(t, "1")))
		require.NoError(t, l.PutStore(store))

		bobStore, err := l.GetStore(bob)
		require.NoError(t, err)
		assert.Equal(t, 0, bobStore.Len())
		_, ok := bobStore.Get("1")
		assert.False(t, ok)
	})

	t.Run("rejects unconstructed stores", func(t *testing.T) {
		l := newLedger(t)
		require.ErrorIs(t, l.PutStore(&ledger.AccountStore{}), ledger.ErrAccountStoreIsNotConstructed)
	})
}
