package commands

import (
	"errors"

	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

// DefaultSettlementBatchSize bounds the payouts handed to the ledger host per run.
const DefaultSettlementBatchSize = 100

var (
	ErrSettlePayoutsCommandIsNotConstructed = errors.New(
		"SettlePayoutsCommand must be created via NewSettlePayoutsCommand constructor",
	)
)

// SettlePayoutsCommand hands issued payouts to the ledger host.
//
// Example:
//
//	cmd, _ := NewSettlePayoutsCommand(DefaultSettlementBatchSize)
//	handler := NewSettlePayoutsCommandHandler(uowFactory, transferer)
//
//	// Run periodically to drain issued payouts
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("settlement failed: %v", err)
//	}
type SettlePayoutsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewSettlePayoutsCommand creates a command settling at most batchSize payouts.
func NewSettlePayoutsCommand(batchSize int) (SettlePayoutsCommand, error) {
	cmd := SettlePayoutsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return SettlePayoutsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePayoutsCommand) Validate() error {
	return c.guard.Validate(ErrSettlePayoutsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of payouts settled by one run.
func (c SettlePayoutsCommand) BatchSize() int {
	return c.batchSize
}

func (c *SettlePayoutsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	c.batchSize = batchSize
	return nil
}
