package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LedgerRefreshJobName is the name of the billing snapshot refresh job
const LedgerRefreshJobName = "ledger_refresh"

// defaultRefreshTimeout bounds one refresh run. The ledger lives on a
// slow office connection, so this is generous.
const defaultRefreshTimeout = 2 * time.Minute

// BillingRefresher rebuilds the reconciled billing snapshot from the
// ledger. The interface keeps the job from importing the service
// package directly.
type BillingRefresher interface {
	Refresh(ctx context.Context) error
}

// LedgerRefreshJob periodically refreshes the billing snapshot so the
// billing page serves warm data instead of paying the ledger round
// trip on first view.
type LedgerRefreshJob struct {
	billing BillingRefresher
	logger  *zap.Logger
	timeout time.Duration
}

// NewLedgerRefreshJob creates a ledger refresh job.
func NewLedgerRefreshJob(billing BillingRefresher, logger *zap.Logger, timeout time.Duration) *LedgerRefreshJob {
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &LedgerRefreshJob{
		billing: billing,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one refresh. Called by the scheduler.
func (j *LedgerRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()

	if err := j.billing.Refresh(ctx); err != nil {
		j.logger.Error("billing snapshot refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("billing snapshot refresh completed",
		zap.Duration("duration", time.Since(start)))
}

// RegisterLedgerRefreshJob registers the refresh job with the
// scheduler and optionally warms the snapshot right away in a
// background goroutine so startup is not blocked.
func RegisterLedgerRefreshJob(scheduler *Scheduler, billing BillingRefresher, logger *zap.Logger, cronExpr string, warmOnStartup bool) error {
	job := NewLedgerRefreshJob(billing, logger, defaultRefreshTimeout)

	if warmOnStartup {
		go job.Run()
	}

	return scheduler.AddJob(LedgerRefreshJobName, cronExpr, job.Run)
}
