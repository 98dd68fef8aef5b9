package commands

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/ports"
	"orderledger/internal/pkg/guard"
)

var (
	ErrInitLedgerCommandIsNotConstructed = errors.New(
		"InitLedgerCommand must be created via NewInitLedgerCommand constructor",
	)

	// ErrAlreadyInitialized is returned by InitLedgerCommandHandler on every
	// call after the first.
	ErrAlreadyInitialized = ports.ErrAlreadyInitialized
)

// InitLedgerCommand fixes the operator account that receives every payout.
//
// Example:
//
//	cmd, err := NewInitLedgerCommand(kernel.MustNewAccountID("operator.test"))
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrAlreadyInitialized) {
//	    // the ledger keeps its first operator
//	}
type InitLedgerCommand struct { //nolint:recvcheck //using for validation
	operator kernel.AccountID

	guard guard.ConstructorGuard
}

// NewInitLedgerCommand creates a command initializing the ledger with operator.
func NewInitLedgerCommand(operator kernel.AccountID) (InitLedgerCommand, error) {
	cmd := InitLedgerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOperator(operator); err != nil {
		return InitLedgerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitLedgerCommand) Validate() error {
	return c.guard.Validate(ErrInitLedgerCommandIsNotConstructed)
}

// Operator returns the account that will receive payouts.
func (c InitLedgerCommand) Operator() kernel.AccountID {
	return c.operator
}

func (c *InitLedgerCommand) setOperator(operator kernel.AccountID) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	c.operator = operator
	return nil
}
