package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=maintenance_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"fmt"
	"time"

	"relance-server/internal/observability"

	"github.com/hibiken/asynq"
)

// MaintenanceStore defines the database operations required by MaintenanceWorker
type MaintenanceStore interface {
	ResetConfigDailyCounters(ctx context.Context, now time.Time) (int64, error)
	ResetCampaignDailyCounters(ctx context.Context, now time.Time) (int64, error)
	PurgeExpiredTargets(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceWorker resets the daily send counters and purges old completed targets
type MaintenanceWorker struct {
	store     MaintenanceStore
	retention time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

// NewMaintenanceWorker creates a new maintenance worker
func NewMaintenanceWorker(store MaintenanceStore, retention time.Duration, logger *observability.Logger) *MaintenanceWorker {
	return &MaintenanceWorker{
		store:     store,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the worker's time source
func (w *MaintenanceWorker) WithClock(now func() time.Time) *MaintenanceWorker {
	w.now = now
	return w
}

// ProcessMaintenanceTask processes a maintenance task (for Asynq)
func (w *MaintenanceWorker) ProcessMaintenanceTask(ctx context.Context, _ *asynq.Task) error {
	return w.Run(ctx)
}

// Run performs one maintenance pass. Each step is idempotent, so a retried
// task repeats them all.
func (w *MaintenanceWorker) Run(ctx context.Context) error {
	now := w.now().UTC()

	configs, err := w.store.ResetConfigDailyCounters(ctx, now)
	if err != nil {
		w.logger.Error(ctx, "failed to reset config daily counters", err)
		return fmt.Errorf("failed to reset config daily counters: %w", err)
	}

	campaigns, err := w.store.ResetCampaignDailyCounters(ctx, now)
	if err != nil {
		w.logger.Error(ctx, "failed to reset campaign daily counters", err)
		return fmt.Errorf("failed to reset campaign daily counters: %w", err)
	}

	var purged int64
	if w.retention > 0 {
		purged, err = w.store.PurgeExpiredTargets(ctx, now.Add(-w.retention))
		if err != nil {
			w.logger.Error(ctx, "failed to purge expired targets", err)
			return fmt.Errorf("failed to purge expired targets: %w", err)
		}
	}

	w.logger.Info(ctx, fmt.Sprintf("relance maintenance completed: %d configs reset, %d campaigns reset, %d targets purged",
		configs, campaigns, purged))
	w.logger.Metrics(ctx,
		observability.MetricField{Key: "relance_configs_reset", Value: configs},
		observability.MetricField{Key: "relance_campaigns_reset", Value: campaigns},
		observability.MetricField{Key: "relance_targets_purged", Value: purged},
	)
	return nil
}
