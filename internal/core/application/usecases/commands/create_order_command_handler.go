package commands

import (
	"context"

	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders: it checks the payment, stores the
// order in the caller's store and issues the payout to the operator, all in
// one unit of work. A rejected order leaves no trace.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPaymentService())
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrInvalidAmount):
//	    // attached value differs from the total
//	case errors.Is(err, services.ErrInsufficientAmount):
//	    // total does not cover the storage fee
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	payments   services.PaymentService
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, payments services.PaymentService) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the order creation command.
// An order already stored under the same id in the caller's store is replaced.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.Payload())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	operator, err := uow.LedgerSettingsRepository().Operator(ctx)
	if err != nil {
		return err
	}

	p, err := h.payments.Pay(o, cmd.Attached(), cmd.Caller(), operator)
	if err != nil {
		return err
	}

	storeRepo := uow.AccountStoreRepository()
	store, err := storeRepo.GetOrCreate(ctx, cmd.Caller())
	if err != nil {
		return err
	}

	if err = store.Put(o); err != nil {
		return err
	}

	if err = storeRepo.Put(ctx, store); err != nil {
		return err
	}

	if err = uow.PayoutRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
