package memory

import (
	"context"

	"orderledger/internal/core/ports"
)

// UnitOfWork is a transaction over a Storage. It holds the storage lock from
// Begin to Commit or Rollback.
type UnitOfWork struct {
	storage *Storage
	tx      *tx
}

// Begin waits for the storage lock, or for ctx to end. Calling Begin on an
// active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := uow.storage.acquire(ctx); err != nil {
		return err
	}

	uow.tx = newTx(uow.storage)
	return nil
}

// Commit publishes the staged writes and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	err := uow.tx.apply()
	uow.tx = nil
	uow.storage.release()
	return err
}

// Rollback drops the staged writes and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	uow.storage.release()
	return nil
}

// AccountStoreRepository returns a repository bound to the active
// transaction, or an auto-committing one before Begin.
func (uow *UnitOfWork) AccountStoreRepository() ports.AccountStoreRepository {
	return &accountStoreRepository{run: uow.runner()}
}

// PayoutRepository returns a repository bound to the active transaction, or
// an auto-committing one before Begin.
func (uow *UnitOfWork) PayoutRepository() ports.PayoutRepository {
	return &payoutRepository{run: uow.runner()}
}

// LedgerSettingsRepository returns a repository bound to the active
// transaction, or an auto-committing one before Begin.
func (uow *UnitOfWork) LedgerSettingsRepository() ports.LedgerSettingsRepository {
	return &settingsRepository{run: uow.runner()}
}

func (uow *UnitOfWork) runner() runner {
	t := uow.tx
	if t == nil {
		return uow.storage.autoCommit
	}
	return func(_ context.Context, fn func(*tx) error) error {
		return fn(t)
	}
}
