package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"circuithub-backend/internal/config"
	"circuithub-backend/internal/shared"
)

// Scheduler enqueues recurring maintenance tasks on a cron schedule.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(cfg config.RedisConfig) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{
				Addr:     cfg.Host,
				Password: cfg.Password,
				DB:       cfg.DB,
			},
			&asynq.SchedulerOpts{Location: time.UTC},
		),
	}
}

// RegisterMaintenanceJobs wires the recurring jobs. Event pruning runs
// nightly at 04:00 UTC, well off the traffic peak.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	task := asynq.NewTask(shared.TypePruneOldEvents, nil)
	if _, err := s.scheduler.Register("0 4 * * *", task, asynq.Queue(shared.QueueAnalytics)); err != nil {
		return fmt.Errorf("register prune job: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
