package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"relance-server/internal/bootstrap"
	"relance-server/internal/config"
	"relance-server/internal/jobs"
	"relance-server/internal/jobs/lock"
	"relance-server/internal/jobs/scheduler"
	scheduledJobs "relance-server/internal/jobs/scheduler/jobs"
	"relance-server/internal/jobs/workers"
	"relance-server/internal/observability"
	"relance-server/internal/relance/enrollment"
	"relance-server/internal/relance/sender"

	"github.com/hibiken/asynq"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting relance worker...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	enrollmentScheduler := enrollment.New(
		&deps.Store,
		deps.Users,
		deps.Selector,
		deps.Lifecycle,
		cfg.Relance.MinReferralAge,
		logger,
	)
	messageSender := sender.New(
		&deps.Store,
		deps.Users,
		deps.Resolver,
		deps.Personalizer,
		deps.Transport,
		deps.Lifecycle,
		cfg.Relance.SendDelay,
		logger,
	)
	maintenanceWorker := workers.NewMaintenanceWorker(&deps.Store, cfg.Relance.Retention, logger)

	// Interval jobs run in-process. The Redis lock keeps concurrent worker
	// replicas from running the same tick twice.
	jobScheduler := scheduler.New(lock.New(deps.Redis, logger), logger)
	jobScheduler.Register(scheduledJobs.NewEnrollmentJob(enrollmentScheduler, cfg.Relance.EnrollmentInterval))
	jobScheduler.Register(scheduledJobs.NewSenderJob(messageSender, cfg.Relance.SenderInterval))

	var (
		srv            *asynq.Server
		asynqScheduler *asynq.Scheduler
	)
	if cfg.Redis.Enabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		srv = asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				jobs.QueueDefault: 2,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(jobs.TypeRelanceMaintenance, maintenanceWorker.ProcessMaintenanceTask)

		// Daily maintenance runs once across replicas through the asynq scheduler
		asynqScheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		})
		if _, err := asynqScheduler.Register(jobs.MaintenanceCron, jobs.NewMaintenanceTask()); err != nil {
			log.Fatalf("Failed to register maintenance task: %v", err)
		}
		if err := asynqScheduler.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}

		go func() {
			logger.Info(ctx, fmt.Sprintf("Asynq worker started on Redis: %s", cfg.Redis.RedisAddr()))
			if err := srv.Run(mux); err != nil {
				log.Fatalf("Failed to run asynq server: %v", err)
			}
		}()
	} else {
		logger.Warn(ctx, "Redis disabled, running maintenance in-process")
		jobScheduler.Register(scheduledJobs.NewMaintenanceJob(maintenanceWorker))
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := jobScheduler.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info(ctx, "Shutting down relance worker...")

	cancel()
	<-done
	if asynqScheduler != nil {
		asynqScheduler.Shutdown()
	}
	if srv != nil {
		srv.Shutdown()
	}
	logger.Info(ctx, "Relance worker stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
