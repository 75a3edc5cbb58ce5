// Package jobs provides scheduled background tasks for the order desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(statsHandler, hub, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// StatsDigestJob recomputes the dashboard counters every 30 seconds and
// broadcasts them as a stats frame, so dashboards converge even when an
// individual lifecycle event was dropped for a slow subscriber.
package jobs
