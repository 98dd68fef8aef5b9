package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	payoutSettlementJob *PayoutSettlementJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(payoutSettlementJob *PayoutSettlementJob) *JobManager {
	return &JobManager{
		payoutSettlementJob: payoutSettlementJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.payoutSettlementJob.Start(); err != nil {
		return fmt.Errorf("failed to start payout settlement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.payoutSettlementJob.Stop()
}
