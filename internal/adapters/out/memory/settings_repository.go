package memory

import (
	"context"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/ports"
)

type settingsRepository struct {
	run runner
}

func (r *settingsRepository) Init(ctx context.Context, operator kernel.AccountID) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	return r.run(ctx, func(t *tx) error {
		if t.initialized() {
			return ports.ErrAlreadyInitialized
		}
		t.operator = &operator
		return nil
	})
}

func (r *settingsRepository) Operator(ctx context.Context) (kernel.AccountID, error) {
	var operator kernel.AccountID

	err := r.run(ctx, func(t *tx) error {
		switch {
		case t.operator != nil:
			operator = *t.operator
		case t.storage.ledger != nil:
			operator = t.storage.ledger.Operator()
		default:
			return ports.ErrNotInitialized
		}
		return nil
	})

	return operator, err
}
