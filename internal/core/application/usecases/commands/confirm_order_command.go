package commands

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)

	// ErrNoSuchAccount is returned when the caller never placed an order.
	ErrNoSuchAccount = errors.New("no orders recorded for account")

	// ErrNoSuchOrder is returned when the caller's store has no order with the id.
	ErrNoSuchOrder = errors.New("order not found")
)

// ConfirmOrderCommand marks one of the caller's own orders as confirmed.
// Confirmation always resolves the caller's store; an order id placed by
// another account is not visible to it.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	caller  kernel.AccountID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command confirming orderID for caller.
func NewConfirmOrderCommand(orderID string, caller kernel.AccountID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to confirm.
func (c ConfirmOrderCommand) OrderID() string {
	return c.orderID
}

// Caller returns the account confirming its order.
func (c ConfirmOrderCommand) Caller() kernel.AccountID {
	return c.caller
}

func (c *ConfirmOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
