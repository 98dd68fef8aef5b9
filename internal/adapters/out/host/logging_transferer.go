package host

import (
	"context"
	"log/slog"

	"orderledger/internal/core/domain/model/kernel"
)

// LoggingTransferer accepts every transfer and only logs it.
type LoggingTransferer struct {
	logger *slog.Logger
}

// NewLoggingTransferer creates a LoggingTransferer.
func NewLoggingTransferer(logger *slog.Logger) *LoggingTransferer {
	return &LoggingTransferer{
		logger: logger.With("component", "LoggingTransferer"),
	}
}

func (t *LoggingTransferer) Transfer(ctx context.Context, to kernel.AccountID, amount kernel.Amount) error {
	t.logger.InfoContext(ctx, "transfer accepted", "to", to.String(), "amount", amount.String())
	return nil
}
