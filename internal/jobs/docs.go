// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reporting over the order and product tables.
//
// # Available Jobs
//
// 1. LowStockReportJob - Runs every minute to report active products whose stock fell below the reorder level
// 2. PendingShipmentsJob - Runs every minute to report the backlog of orders awaiting shipment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, unshippedOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *", running at the top of
// every minute. The reports are observational; the business operations are
// never driven from here.
//
// # Error Handling
//
// Both jobs log failures and keep running; a transient database error on one
// tick must not stop the schedule.
package jobs
