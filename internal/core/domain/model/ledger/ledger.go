package ledger

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

// ErrLedgerIsNotConstructed is returned when a Ledger was not created through NewLedger.
var ErrLedgerIsNotConstructed = errors.New("Ledger must be created via NewLedger constructor")

// Ledger is the global order ledger: the store of every account that ever
// ordered, plus the operator account that receives payouts.
//
// Ledger is not safe for concurrent use; callers serialize access (see the
// memory adapter's unit of work).
type Ledger struct {
	operator kernel.AccountID
	stores   map[kernel.AccountID]*AccountStore
	hasher   Hasher

	guard guard.ConstructorGuard
}

// NewLedger creates an empty ledger paying out to operator.
func NewLedger(operator kernel.AccountID, hasher Hasher) (*Ledger, error) {
	if err := operator.Validate(); err != nil {
		return nil, err
	}
	if hasher == nil {
		return nil, errs.NewValueIsRequiredError("hasher")
	}

	return &Ledger{
		operator: operator,
		stores:   make(map[kernel.AccountID]*AccountStore),
		hasher:   hasher,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the ledger was created through NewLedger.
func (l *Ledger) Validate() error {
	if l == nil {
		return ErrLedgerIsNotConstructed
	}
	return l.guard.Validate(ErrLedgerIsNotConstructed)
}

// Operator returns the payout destination fixed at initialization.
func (l *Ledger) Operator() kernel.AccountID {
	return l.operator
}

// GetStore returns a handle on the store of account, or a fresh empty handle
// if the account never ordered. Absence is not an error here.
func (l *Ledger) GetStore(account kernel.AccountID) (*AccountStore, error) {
	if store, ok := l.FindStore(account); ok {
		return store, nil
	}
	return NewAccountStore(account, l.hasher.Namespace(account))
}

// FindStore returns a handle on the store of account, if one was ever put.
func (l *Ledger) FindStore(account kernel.AccountID) (*AccountStore, bool) {
	store, ok := l.stores[account]
	if !ok {
		return nil, false
	}
	return store.Clone(), true
}

// PutStore commits a handle, replacing whatever the ledger held for its owner.
func (l *Ledger) PutStore(store *AccountStore) error {
	if err := store.Validate(); err != nil {
		return err
	}
	l.stores[store.Owner()] = store.Clone()
	return nil
}

// Accounts returns the number of accounts holding a store.
func (l *Ledger) Accounts() int {
	return len(l.stores)
}
