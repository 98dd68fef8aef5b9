package ports

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for payouts.
type PayoutRepository interface {
	// Add persists a newly issued payout.
	Add(ctx context.Context, aggregate *payout.Payout) error

	// Update persists the settlement state of an existing payout.
	Update(ctx context.Context, aggregate *payout.Payout) error

	// Get retrieves a payout by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error)

	// GetAllIssued returns at most limit payouts still waiting for settlement,
	// oldest first. Inside a unit of work the returned payouts stay locked
	// until it ends.
	GetAllIssued(ctx context.Context, limit int) ([]*payout.Payout, error)

	// GetAllByPayer returns every payout paid by account, oldest first.
	GetAllByPayer(ctx context.Context, account kernel.AccountID) ([]*payout.Payout, error)
}
