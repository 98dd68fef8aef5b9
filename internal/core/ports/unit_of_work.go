package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every write of the transaction visible at once.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every write of the transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AccountStoreRepository returns a repository bound to the current transaction.
	AccountStoreRepository() AccountStoreRepository

	// PayoutRepository returns a repository bound to the current transaction.
	PayoutRepository() PayoutRepository

	// LedgerSettingsRepository returns a repository bound to the current transaction.
	LedgerSettingsRepository() LedgerSettingsRepository
}
