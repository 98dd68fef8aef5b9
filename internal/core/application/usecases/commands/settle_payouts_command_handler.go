package commands

import (
	"context"
	"errors"
	"fmt"

	"orderledger/internal/core/domain/model/payout"
	"orderledger/internal/core/ports"
)

// SettlePayoutsCommandHandler transfers issued payouts to their recipient.
//
// Every payout is handed to the ledger host at most once. A run first claims
// its batch by committing the payouts as Sending, then transfers with no
// transaction open, then records each outcome in its own transaction. A
// rejected transfer marks the payout Failed. A payout whose outcome could not
// be recorded stays Sending and is not picked up again.
type SettlePayoutsCommandHandler struct {
	uowFactory PayoutUoWFactory
	transferer ports.Transferer
}

// NewSettlePayoutsCommandHandler creates a handler settling payouts through transferer.
func NewSettlePayoutsCommandHandler(uowFactory PayoutUoWFactory, transferer ports.Transferer) SettlePayoutsCommandHandler {
	return SettlePayoutsCommandHandler{
		uowFactory: uowFactory,
		transferer: transferer,
	}
}

// SettlePayoutsResult counts the outcome of one settlement run.
type SettlePayoutsResult struct {
	Settled int
	Failed  int
}

// Handle settles up to cmd.BatchSize() issued payouts, oldest first.
// Outcomes that could not be recorded are joined into the returned error; the
// result still counts every outcome that was.
func (h *SettlePayoutsCommandHandler) Handle(ctx context.Context, cmd SettlePayoutsCommand) (SettlePayoutsResult, error) {
	var result SettlePayoutsResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	payouts, err := h.claim(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	var errList []error
	for _, p := range payouts {
		transferErr := h.transferer.Transfer(ctx, p.Recipient(), p.Amount())
		if err = h.record(ctx, p, transferErr); err != nil {
			errList = append(errList, err)
			continue
		}

		if transferErr != nil {
			result.Failed++
		} else {
			result.Settled++
		}
	}

	return result, errors.Join(errList...)
}

// claim moves a batch of issued payouts to Sending and commits before any
// transfer starts.
func (h *SettlePayoutsCommandHandler) claim(ctx context.Context, limit int) ([]*payout.Payout, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payoutRepo := uow.PayoutRepository()
	payouts, err := payoutRepo.GetAllIssued(ctx, limit)
	if err != nil {
		return nil, err
	}

	for _, p := range payouts {
		if err = p.MarkSending(); err != nil {
			return nil, err
		}
		if err = payoutRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return payouts, nil
}

// record stores the outcome of a single transfer.
func (h *SettlePayoutsCommandHandler) record(ctx context.Context, p *payout.Payout, transferErr error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("record payout %s: %w", p.ID(), err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	if transferErr != nil {
		err = p.Fail(transferErr.Error())
	} else {
		err = p.Settle()
	}
	if err != nil {
		return err
	}

	if err = uow.PayoutRepository().Update(ctx, p); err != nil {
		return fmt.Errorf("record payout %s: %w", p.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("record payout %s: %w", p.ID(), err)
	}

	return nil
}
