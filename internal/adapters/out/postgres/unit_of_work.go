// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the order ledger.
//
// Key Features:
//   - Transaction management across the account store, payout and settings repositories
//   - Row locks taken by repositories inside a transaction, held until it ends
//   - Aggregate tracking of every store and payout written by the transaction
//   - Repositories fall back to the plain connection outside a transaction
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, hasher)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	store, err := uow.AccountStoreRepository().Find(ctx, caller)
//	if err != nil {
//	    return err
//	}
//	// ... mutate the store
//	if err := uow.AccountStoreRepository().Put(ctx, store); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Two transactions touching the same account store serialize on its row lock
package postgres

import (
	"context"

	"orderledger/internal/adapters/out/postgres/ledgerrepo"
	"orderledger/internal/adapters/out/postgres/payoutrepo"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	hasher ledger.Hasher
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// hasher derives the namespace of account stores created on first order.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, host.NewBlake3Hasher())
func NewGormUnitOfWorkFactory(db *gorm.DB, hasher ledger.Hasher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, hasher: hasher}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		hasher:            f.hasher,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	hasher            ledger.Hasher
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// AccountStoreRepository provides access to account stores within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) AccountStoreRepository() ports.AccountStoreRepository {
	return ledgerrepo.NewGormAccountStoreRepository(uow.conn(), uow.hasher, uow)
}

// PayoutRepository provides access to payouts within the unit of work.
func (uow *GormUnitOfWork) PayoutRepository() ports.PayoutRepository {
	return payoutrepo.NewGormPayoutRepository(uow.conn(), uow)
}

// LedgerSettingsRepository provides access to the ledger settings within the unit of work.
func (uow *GormUnitOfWork) LedgerSettingsRepository() ports.LedgerSettingsRepository {
	return ledgerrepo.NewGormLedgerSettingsRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the keys of the aggregates written since the last
// rollback, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		keys = append(keys, tracked.Key)
	}
	return keys
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the tables of the order ledger.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ledgerrepo.AccountStoreDTO{},
		&ledgerrepo.OrderDTO{},
		&ledgerrepo.SettingsDTO{},
		&payoutrepo.PayoutDTO{},
	)
}
