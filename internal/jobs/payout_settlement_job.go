package jobs

import (
	"context"
	"log/slog"

	"orderledger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSettlementSchedule runs the settlement every second.
const DefaultSettlementSchedule = "* * * * * *"

// PayoutSettlementJob periodically transfers issued payouts to their recipients.
// A run that is still transferring when the next tick fires makes that tick a no-op.
type PayoutSettlementJob struct {
	handler   commands.SettlePayoutsCommandHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPayoutSettlementJob creates a job settling up to batchSize payouts per run
// on the given six-field cron schedule.
func NewPayoutSettlementJob(
	handler commands.SettlePayoutsCommandHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *PayoutSettlementJob {
	if schedule == "" {
		schedule = DefaultSettlementSchedule
	}

	return &PayoutSettlementJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "payout_settlement_job"),
	}
}

// Start schedules the settlement and starts the scheduler.
func (j *PayoutSettlementJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payout settlement job started", "schedule", j.schedule)
	return nil
}

// RunOnce settles one batch of issued payouts and logs the outcome.
func (j *PayoutSettlementJob) RunOnce(ctx context.Context) commands.SettlePayoutsResult {
	cmd, err := commands.NewSettlePayoutsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid settlement batch size", "error", err)
		return commands.SettlePayoutsResult{}
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payout settlement failed", "error", err,
			"settled", result.Settled, "failed", result.Failed)
		return result
	}

	if result.Failed > 0 {
		j.logger.WarnContext(ctx, "Some payouts failed to settle", "settled", result.Settled, "failed", result.Failed)
	} else if result.Settled > 0 {
		j.logger.InfoContext(ctx, "Payouts settled", "settled", result.Settled)
	}

	return result
}

// Stop stops the scheduler and waits for a running settlement to finish.
func (j *PayoutSettlementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payout settlement job stopped")
}
