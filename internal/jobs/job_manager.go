package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsDigestJob *StatsDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler queries.GetOrderStatsQueryHandler,
	hub *notify.Hub,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsDigestJob: NewStatsDigestJob(statsHandler, hub, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsDigestJob.Stop()
}
