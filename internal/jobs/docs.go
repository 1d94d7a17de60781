// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot cover.
//
// # Available Jobs
//
// 1. DeliveryFinalizationJob - Runs every minute to finalize active routes
// whose orders have all reached a terminal outcome. Completion normally
// finalizes the route inline; the sweep catches routes that slipped through,
// for example when two drivers completed the last two orders concurrently
// and both skipped finalization after a guarded-update conflict.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(finalizeDeliveriesHandler, logger)
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
// The finalization job logs every error; a sweep failure is never fatal
// because the next run retries the same work.
package jobs
