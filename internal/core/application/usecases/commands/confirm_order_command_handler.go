package commands

import (
	"context"
	"errors"
	"fmt"

	"orderledger/internal/pkg/errs"
)

// ConfirmOrderCommandHandler moves an order of the caller from Placed to
// Confirmed. Confirming a confirmed order succeeds without changing it.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand("1", kernel.MustNewAccountID("alice.test"))
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrNoSuchOrder) {
//	    // alice has orders, none of them is "1"
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory AccountStoreUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory AccountStoreUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the order.
//
// Returns:
//   - ErrNoSuchAccount if the caller has no store
//   - ErrNoSuchOrder if the caller's store has no order with the id
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.AccountStoreRepository()
	store, err := storeRepo.Find(ctx, cmd.Caller())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrNoSuchAccount, cmd.Caller())
		}
		return err
	}

	o, ok := store.Get(cmd.OrderID())
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchOrder, cmd.OrderID())
	}

	if err = o.Confirm(); err != nil {
		return err
	}

	if err = storeRepo.Put(ctx, store); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
