package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

func NewJobManager(statsHandler OrderStatsHandler, statsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(statsHandler, statsSchedule, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
