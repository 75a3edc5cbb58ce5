package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsDigestJob periodically recomputes the dashboard counters and
// broadcasts them to the dashboard group. The digest keeps dashboards
// converged even when an individual event frame was dropped for a slow
// subscriber.
type StatsDigestJob struct {
	handler queries.GetOrderStatsQueryHandler
	hub     *notify.Hub
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsDigestJob creates the stats digest job.
func NewStatsDigestJob(
	handler queries.GetOrderStatsQueryHandler,
	hub *notify.Hub,
	logger *slog.Logger,
) *StatsDigestJob {
	return &StatsDigestJob{
		handler: handler,
		hub:     hub,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_digest_job"),
	}
}

// Start begins the digest job, running every 30 seconds.
func (j *StatsDigestJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats digest failed", "error", err)
			return
		}

		j.hub.Publish(notify.DashboardGroup, notify.Event{
			Kind: notify.EventStats,
			Data: stats,
		})
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats digest job started (running every 30 seconds)")
	return nil
}

// Stop stops the digest job.
func (j *StatsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats digest job stopped")
}
