package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"relance-server/internal/jobs/lock"
	"relance-server/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging and locking
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Locker guards a job run across workers
type Locker interface {
	Run(ctx context.Context, job string, ttl time.Duration, fn func(context.Context) error) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs   []Job
	locker Locker
	logger *observability.Logger
}

// New creates a new scheduler. A nil locker runs jobs unguarded.
func New(locker Locker, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:   make([]Job, 0),
		locker: locker,
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs all scheduled jobs until ctx is cancelled, then waits for the
// running ones to return
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

// runJob runs a single job on its schedule
func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	// Run immediately on startup
	s.executeJob(jobCtx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("Stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C:
			s.executeJob(jobCtx, job)
		}
	}
}

// executeJob executes a job under its lock and logs timing. A run that
// overlaps another worker's is skipped.
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()

	run := job.Run
	if s.locker != nil {
		run = func(ctx context.Context) error {
			return s.locker.Run(ctx, job.Name(), job.Schedule(), job.Run)
		}
	}

	err := run(ctx)
	duration := time.Since(start)

	switch {
	case errors.Is(err, lock.ErrHeld):
		s.logger.Info(ctx, fmt.Sprintf("Job %s skipped: another worker is running it", job.Name()))
	case errors.Is(err, context.Canceled):
		s.logger.Info(ctx, fmt.Sprintf("Job %s interrupted after %v", job.Name(), duration))
	case err != nil:
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
	default:
		s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	}
}
