// Package jobs provides scheduled background tasks for the order agent.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order store.
//
// # Available Jobs
//
// 1. StatusReportJob - Runs every minute to log order counts per status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(countOrdersHandler, logger)
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
// The status report job logs query failures and keeps running; a failed
// report never stops the schedule.
package jobs
