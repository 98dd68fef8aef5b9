// Package commands contains business operations that modify the order ledger.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountStoreRepoFactory provides access to the account stores within a transaction.
	AccountStoreRepoFactory interface {
		AccountStoreRepository() ports.AccountStoreRepository
	}

	// PayoutRepoFactory provides access to payouts within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// SettingsRepoFactory provides access to the ledger settings within a transaction.
	SettingsRepoFactory interface {
		LedgerSettingsRepository() ports.LedgerSettingsRepository
	}

	// SettingsUoW manages transactions touching only the ledger settings.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// AccountStoreUoW manages transactions touching only account stores.
	AccountStoreUoW interface {
		TxManager
		AccountStoreRepoFactory
	}

	// AccountStoreUoWFactory creates new account store unit of work instances.
	AccountStoreUoWFactory interface {
		Create() AccountStoreUoW
	}

	// PayoutUoW manages transactions touching only payouts.
	PayoutUoW interface {
		TxManager
		PayoutRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	// UoW manages transactions spanning the settings, the account stores and
	// the payouts. Placing an order writes the caller's store and its payout
	// together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   operator, err := uow.LedgerSettingsRepository().Operator(ctx)
	//   store, err := uow.AccountStoreRepository().GetOrCreate(ctx, caller)
	//   // ... put the order, add the payout
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountStoreRepoFactory
		PayoutRepoFactory
		SettingsRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
