package payoutrepo

import (
	"context"
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly issued payout.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves the settlement state of an existing payout. Everything else
// about a payout is immutable.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PayoutDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "failure_reason").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payout", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a payout by ID.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllIssued retrieves up to limit issued payouts, oldest first. Inside a
// transaction the rows are locked, and rows locked by another settlement run
// are skipped.
func (r *GormPayoutRepository) GetAllIssued(ctx context.Context, limit int) ([]*payout.Payout, error) {
	query := r.db.WithContext(ctx)
	if _, ok := r.db.Statement.ConnPool.(gorm.TxCommitter); ok {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	var dtos []PayoutDTO
	err := query.
		Where("status = ?", payout.StatusIssued.String()).
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByPayer retrieves every payout of account, oldest first.
func (r *GormPayoutRepository) GetAllByPayer(ctx context.Context, account kernel.AccountID) ([]*payout.Payout, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutDTO
	err := r.db.WithContext(ctx).
		Where("payer = ?", account.String()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []PayoutDTO) ([]*payout.Payout, error) {
	payouts := make([]*payout.Payout, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}
