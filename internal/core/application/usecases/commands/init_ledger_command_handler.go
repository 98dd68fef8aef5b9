package commands

import (
	"context"
)

// InitLedgerCommandHandler records the operator account exactly once.
type InitLedgerCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewInitLedgerCommandHandler creates a handler for ledger initialization.
func NewInitLedgerCommandHandler(uowFactory SettingsUoWFactory) InitLedgerCommandHandler {
	return InitLedgerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the operator. Returns ErrAlreadyInitialized if an operator
// was stored before; the first one is kept.
func (h *InitLedgerCommandHandler) Handle(ctx context.Context, cmd InitLedgerCommand) error {
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

	if err := uow.LedgerSettingsRepository().Init(ctx, cmd.Operator()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
