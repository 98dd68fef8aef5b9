package ledgerrepo

import (
	"context"
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"
	"orderledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountStoreRepository implements AccountStoreRepository using GORM.
// Inside a transaction a loaded store row stays locked until the transaction
// ends, so read-modify-write of one account's store is serialized.
type GormAccountStoreRepository struct {
	db      *gorm.DB
	hasher  ledger.Hasher
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormAccountStoreRepository creates a new GORM account store repository.
func NewGormAccountStoreRepository(db *gorm.DB, hasher ledger.Hasher, tracker aggregateTracker) *GormAccountStoreRepository {
	return &GormAccountStoreRepository{
		db:      db,
		hasher:  hasher,
		tracker: tracker,
	}
}

// GetOrCreate loads the store of account, or returns a new empty one.
func (r *GormAccountStoreRepository) GetOrCreate(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	store, err := r.Find(ctx, account)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	return ledger.NewAccountStore(account, r.hasher.Namespace(account))
}

// Find loads the store of account with all of its orders.
func (r *GormAccountStoreRepository) Find(ctx context.Context, account kernel.AccountID) (*ledger.AccountStore, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if inTransaction(r.db) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto AccountStoreDTO
	err := query.Preload("Orders").First(&dto, "owner = ?", account.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", account.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Put upserts the store row and every order row of store.
func (r *GormAccountStoreRepository) Put(ctx context.Context, store *ledger.AccountStore) error {
	if err := store.Validate(); err != nil {
		return err
	}

	dto := fromDomain(store)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}},
			DoUpdates: clause.AssignmentColumns([]string{"namespace"}),
		}).Create(&dto).Error
		if err != nil {
			return err
		}

		if len(dto.Orders) == 0 {
			return nil
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "id"}},
			UpdateAll: true,
		}).Create(&dto.Orders).Error
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(store.Owner().String(), store)
	return nil
}

// inTransaction reports whether db is bound to an open transaction.
func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
