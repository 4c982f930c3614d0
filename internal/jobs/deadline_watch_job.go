package jobs

import (
	"context"
	"log/slog"

	"buildmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeadlineWatchJob runs the daily sweep over open projects whose bidding
// deadline has passed, dropping a mailbox entry for each owner.
type DeadlineWatchJob struct {
	handler commands.NotifyExpiredProjectsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineWatchJob creates the deadline sweep job.
func NewDeadlineWatchJob(
	handler commands.NotifyExpiredProjectsCommandHandler, logger *slog.Logger,
) *DeadlineWatchJob {
	return &DeadlineWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "deadline_watch_job"),
	}
}

// Start schedules the sweep to run once a day at midnight.
func (j *DeadlineWatchJob) Start() error {
	_, err := j.cron.AddFunc("@daily", func() {
		ctx := context.Background()
		cmd := commands.NewNotifyExpiredProjectsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Deadline sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline watch job started (running daily)")
	return nil
}

// Stop stops the deadline sweep job.
func (j *DeadlineWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline watch job stopped")
}
