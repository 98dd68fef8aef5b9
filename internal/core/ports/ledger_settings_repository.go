package ports

import (
	"context"
	"errors"

	"orderledger/internal/core/domain/model/kernel"
)

var (
	// ErrAlreadyInitialized is returned when the ledger is initialized twice.
	ErrAlreadyInitialized = errors.New("ledger is already initialized")

	// ErrNotInitialized is returned when the operator is read before initialization.
	ErrNotInitialized = errors.New("ledger is not initialized")
)

// LedgerSettingsRepository holds the operator account fixed at initialization.
type LedgerSettingsRepository interface {
	// Init records operator. Fails with ErrAlreadyInitialized on every call
	// after the first.
	Init(ctx context.Context, operator kernel.AccountID) error

	// Operator returns the account receiving payouts, or ErrNotInitialized.
	Operator(ctx context.Context) (kernel.AccountID, error)
}
