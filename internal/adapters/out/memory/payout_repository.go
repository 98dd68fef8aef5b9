package memory

import (
	"context"
	"fmt"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/pkg/errs"
)

type payoutRepository struct {
	run runner
}

func (r *payoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.run(ctx, func(t *tx) error {
		if _, ok := t.findPayout(aggregate.ID()); ok {
			return errs.NewValueIsInvalidErrorWithCause("payout", fmt.Errorf("payout %s already exists", aggregate.ID()))
		}
		t.payouts[aggregate.ID()] = aggregate.Clone()
		t.added = append(t.added, aggregate.ID())
		return nil
	})
}

func (r *payoutRepository) Update(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.run(ctx, func(t *tx) error {
		if _, ok := t.findPayout(aggregate.ID()); !ok {
			return errs.NewObjectNotFoundError("payout", aggregate.ID().String())
		}
		t.payouts[aggregate.ID()] = aggregate.Clone()
		return nil
	})
}

func (r *payoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *payout.Payout
	err := r.run(ctx, func(t *tx) error {
		p, ok := t.findPayout(id)
		if !ok {
			return errs.NewObjectNotFoundError("payout", id.String())
		}
		found = p.Clone()
		return nil
	})

	return found, err
}

func (r *payoutRepository) GetAllIssued(ctx context.Context, limit int) ([]*payout.Payout, error) {
	return r.collect(ctx, limit, func(p *payout.Payout) bool {
		return p.Status() == payout.StatusIssued
	})
}

func (r *payoutRepository) GetAllByPayer(ctx context.Context, account kernel.AccountID) ([]*payout.Payout, error) {
	return r.collect(ctx, 0, func(p *payout.Payout) bool {
		return p.Payer().IsEqual(account)
	})
}

// collect returns copies of the matching payouts, oldest first. A limit of
// zero means no limit.
func (r *payoutRepository) collect(ctx context.Context, limit int, match func(*payout.Payout) bool) ([]*payout.Payout, error) {
	payouts := make([]*payout.Payout, 0)

	err := r.run(ctx, func(t *tx) error {
		for _, id := range t.payoutOrder() {
			if limit > 0 && len(payouts) == limit {
				break
			}
			p, _ := t.findPayout(id)
			if match(p) {
				payouts = append(payouts, p.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payouts, nil
}
