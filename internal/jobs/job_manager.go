package jobs

import (
	"fmt"
	"log/slog"

	"buildmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deadlineWatchJob *DeadlineWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	notifyExpiredProjectsHandler commands.NotifyExpiredProjectsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineWatchJob: NewDeadlineWatchJob(notifyExpiredProjectsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineWatchJob.Stop()
}
