package jobs

import (
	"github.com/hibiken/asynq"
)

// Task types
const (
	TypeRelanceMaintenance = "relance:maintenance"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// MaintenanceCron runs the daily maintenance just after the UTC day rolls over
const MaintenanceCron = "5 0 * * *"

// NewMaintenanceTask creates the daily counter reset and retention purge task
func NewMaintenanceTask() *asynq.Task {
	return asynq.NewTask(TypeRelanceMaintenance, nil, asynq.Queue(QueueLow), asynq.MaxRetry(3))
}
