// Package ports defines the contracts between the order ledger core and its
// infrastructure: persistence of the ledger, payouts and settings, the
// transaction boundary, and the ledger host that moves value.
package ports

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
)

// AccountStoreRepository is the persistent form of the global order ledger.
// Stores are read, mutated by the caller and written back with Put; a store
// obtained inside a unit of work is locked until the unit of work ends.
type AccountStoreRepository interface {
	// GetOrCreate returns the store of account, or an empty store if the account
	// never ordered. The empty store is not persisted until Put.
	GetOrCreate(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error)

	// Find returns the store of account, or errs.ObjectNotFoundError if the
	// account never ordered.
	Find(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error)

	// Put writes the store and every order in it, replacing what was stored
	// for its owner.
	Put(ctx context.Context, store *ledger.AccountStore) error
}
