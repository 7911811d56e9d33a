package watch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler wraps gocron for periodic rebuild ticks. Serve mode uses it
// to re-evaluate future-dated entries so they publish when their date
// arrives, without a file change.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a scheduler instance.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Scheduler{scheduler: s}, nil
}

// SchedulePeriodicRebuild registers a periodic task and returns its job
// ID for later management.
func (s *Scheduler) SchedulePeriodicRebuild(interval time.Duration, task func()) (string, error) {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create periodic rebuild job: %w", err)
	}
	return job.ID().String(), nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting rebuild scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping rebuild scheduler")
	return s.scheduler.Shutdown()
}
