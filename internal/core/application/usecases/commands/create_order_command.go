package commands

import (
	"errors"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/pkg/errs"
	"orderledger/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand places an order on behalf of the calling account, paid
// for with the value attached to the call.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    order.Payload{ID: "1", Flavor: "margherita", Total: "2000000000000000000000"},
//	    kernel.MustParseAmount("2000000000000000000000"),
//	    kernel.MustNewAccountID("alice.test"),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPaymentService())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	payload  order.Payload
	attached kernel.Amount
	caller   kernel.AccountID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command placing payload for caller.
// The payload must carry an order id; the total is checked by the handler.
func NewCreateOrderCommand(payload order.Payload, attached kernel.Amount, caller kernel.AccountID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		attached: attached,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayload(payload),
		cmd.setCaller(caller),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Payload returns the order description supplied by the caller.
func (c CreateOrderCommand) Payload() order.Payload {
	return c.payload
}

// Attached returns the value attached to the call.
func (c CreateOrderCommand) Attached() kernel.Amount {
	return c.attached
}

// Caller returns the account placing the order.
func (c CreateOrderCommand) Caller() kernel.AccountID {
	return c.caller
}

func (c *CreateOrderCommand) setPayload(payload order.Payload) error {
	if payload.ID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.payload = payload
	return nil
}

func (c *CreateOrderCommand) setCaller(caller kernel.AccountID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
