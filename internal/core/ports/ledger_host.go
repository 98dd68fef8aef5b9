package ports

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
)

// Hasher derives the storage namespace of an account's store.
type Hasher interface {
	ledger.Hasher
}

// Transferer moves value to an account on the ledger host. A transfer that
// returned an error is considered not to have happened.
type Transferer interface {
	Transfer(ctx context.Context, to kernel.AccountID, amount kernel.Amount) error
}
