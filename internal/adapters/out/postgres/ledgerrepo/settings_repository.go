package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerSettingsRepository implements LedgerSettingsRepository using GORM.
type GormLedgerSettingsRepository struct {
	db *gorm.DB
}

// NewGormLedgerSettingsRepository creates a new GORM settings repository.
func NewGormLedgerSettingsRepository(db *gorm.DB) *GormLedgerSettingsRepository {
	return &GormLedgerSettingsRepository{db: db}
}

// Init inserts the settings row. The row is never updated, so a second Init
// inserts nothing and reports ErrAlreadyInitialized.
func (r *GormLedgerSettingsRepository) Init(ctx context.Context, operator kernel.AccountID) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SettingsDTO{ID: settingsRowID, Operator: operator.String()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrAlreadyInitialized
	}

	return nil
}

// Operator reads the operator. Inside a transaction the settings row is
// share-locked until the transaction ends.
func (r *GormLedgerSettingsRepository) Operator(ctx context.Context) (kernel.AccountID, error) {
	query := r.db.WithContext(ctx)
	if inTransaction(r.db) {
		query = query.Clauses(clause.Locking{Strength: "SHARE"})
	}

	var dto SettingsDTO
	if err := query.First(&dto, settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.AccountID{}, ports.ErrNotInitialized
		}
		return kernel.AccountID{}, err
	}

	operator, err := kernel.NewAccountID(dto.Operator)
	if err != nil {
		return kernel.AccountID{}, fmt.Errorf("stored operator is corrupt: %w", err)
	}

	return operator, nil
}
