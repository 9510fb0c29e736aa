// Package jobs provides scheduled background tasks for the atelier.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order production.
//
// # Available Jobs
//
// 1. TailorAssignmentJob - Runs every five seconds to assign waiting orders to available tailors
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignTailorHandler, logger)
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
// The assignment job uses the cron expression "*/5 * * * * *", running every
// five seconds. Orders therefore reach a tailor within seconds of submission
// without coupling the HTTP request path to dispatch.
//
// # Error Handling
//
// The assignment job ignores expected business errors (no waiting orders,
// no free tailors) and logs everything else as a system issue.
package jobs
