package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockReportJob   *LowStockReportJob
	pendingShipmentsJob *PendingShipmentsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	lowStockHandler queries.GetLowStockProductsQueryHandler,
	unshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob:   NewLowStockReportJob(lowStockHandler, logger),
		pendingShipmentsJob: NewPendingShipmentsJob(unshippedOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	if err := jm.pendingShipmentsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockReportJob.Stop()
		return fmt.Errorf("failed to start pending shipments job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingShipmentsJob.Stop()
	jm.lowStockReportJob.Stop()
}
