// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the catalog.
//
// # Available Jobs
//
// 1. StockReportJob - Runs every five minutes and logs catalog items whose
// stock has fallen below the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getLowStockItemsHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stock report job logs query failures and keeps running; a failed run
// does not stop the schedule.
package jobs
