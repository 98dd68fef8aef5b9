package memory

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/ports"
	"orderledger/internal/pkg/errs"
)

type accountStoreRepository struct {
	run runner
}

func (r *accountStoreRepository) GetOrCreate(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	var store *ledger.AccountStore
	err := r.run(ctx, func(t *tx) error {
		if found, ok := t.findStore(account); ok {
			store = found
			return nil
		}

		var err error
		if t.storage.ledger != nil {
			store, err = t.storage.ledger.GetStore(account)
		} else {
			store, err = ledger.NewAccountStore(account, t.storage.hasher.Namespace(account))
		}
		return err
	})

	return store, err
}

func (r *accountStoreRepository) Find(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	var store *ledger.AccountStore
	err := r.run(ctx, func(t *tx) error {
		found, ok := t.findStore(account)
		if !ok {
			return errs.NewObjectNotFoundError("account", account.String())
		}
		store = found
		return nil
	})

	return store, err
}

func (r *accountStoreRepository) Put(ctx context.Context, store *ledger.AccountStore) error {
	if err := store.Validate(); err != nil {
		return err
	}

	return r.run(ctx, func(t *tx) error {
		if !t.initialized() {
			return ports.ErrNotInitialized
		}
		t.stores[store.Owner()] = store.Clone()
		return nil
	})
}
