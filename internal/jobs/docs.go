// Package jobs provides scheduled background tasks for the order ledger.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// PayoutSettlementJob transfers issued payouts to their recipients. Placing an
// order only records the payout; this job performs the transfer and marks the
// payout Settled, or Failed with the transfer error. Failed payouts are never
// retried.
//
// # Usage
//
//	job := jobs.NewPayoutSettlementJob(settleHandler, "* * * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next tick tries again with whatever is
// still issued. Overlapping runs are skipped.
package jobs
