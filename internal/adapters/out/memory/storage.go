// Package memory keeps the order ledger in process memory.
//
// Every unit of work holds the storage's single lock from Begin until Commit
// or Rollback, so state-mutating operations never interleave. Writes are
// staged on copies and published together by Commit; Rollback drops them.
// Repositories obtained outside a unit of work run each call as its own
// short transaction.
//
// Usage:
//
//	storage := memory.NewStorage(hasher)
//	uow := storage.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	store, err := uow.AccountStoreRepository().GetOrCreate(ctx, caller)
//	// ...
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside of Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// Storage is the committed state shared by every unit of work.
type Storage struct {
	// lock is a one slot semaphore so that acquiring it can honor ctx
	lock   chan struct{}
	hasher ports.Hasher

	// ledger is nil until the settings are initialized
	ledger *ledger.Ledger

	payouts     map[kernel.UUID]*payout.Payout
	payoutOrder []kernel.UUID
}

// NewStorage creates an empty, uninitialized storage.
func NewStorage(hasher ports.Hasher) *Storage {
	return &Storage{
		lock:    make(chan struct{}, 1),
		hasher:  hasher,
		payouts: make(map[kernel.UUID]*payout.Payout),
	}
}

// Create produces a new unit of work over the storage.
func (s *Storage) Create() ports.UnitOfWork {
	return &UnitOfWork{storage: s}
}

// AccountStoreRepository returns a repository committing every call on its own.
func (s *Storage) AccountStoreRepository() ports.AccountStoreRepository {
	return &accountStoreRepository{run: s.autoCommit}
}

// PayoutRepository returns a repository committing every call on its own.
func (s *Storage) PayoutRepository() ports.PayoutRepository {
	return &payoutRepository{run: s.autoCommit}
}

// LedgerSettingsRepository returns a repository committing every call on its own.
func (s *Storage) LedgerSettingsRepository() ports.LedgerSettingsRepository {
	return &settingsRepository{run: s.autoCommit}
}

func (s *Storage) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Storage) release() {
	<-s.lock
}

func (s *Storage) autoCommit(ctx context.Context, fn func(*tx) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	t := newTx(s)
	if err := fn(t); err != nil {
		return err
	}
	return t.apply()
}

// runner executes fn against a transaction.
type runner func(ctx context.Context, fn func(*tx) error) error
