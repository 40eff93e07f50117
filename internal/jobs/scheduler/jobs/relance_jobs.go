package jobs

import (
	"context"
	"time"

	"relance-server/internal/relance/enrollment"
	"relance-server/internal/relance/sender"
)

// Enroller runs one enrollment tick
type Enroller interface {
	Run(ctx context.Context) (enrollment.Report, error)
}

// Dispatcher runs one send pass
type Dispatcher interface {
	Run(ctx context.Context) (sender.Report, error)
}

// EnrollmentJob enrolls new targets into the default loops and active campaigns
type EnrollmentJob struct {
	enroller Enroller
	interval time.Duration
}

func NewEnrollmentJob(enroller Enroller, interval time.Duration) *EnrollmentJob {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &EnrollmentJob{enroller: enroller, interval: interval}
}

func (j *EnrollmentJob) Name() string {
	return "relance_enrollment"
}

func (j *EnrollmentJob) Schedule() time.Duration {
	return j.interval
}

func (j *EnrollmentJob) Run(ctx context.Context) error {
	_, err := j.enroller.Run(ctx)
	return err
}

// SenderJob sends every due relance message
type SenderJob struct {
	dispatcher Dispatcher
	interval   time.Duration
}

func NewSenderJob(dispatcher Dispatcher, interval time.Duration) *SenderJob {
	if interval == 0 {
		interval = 6 * time.Hour
	}
	return &SenderJob{dispatcher: dispatcher, interval: interval}
}

func (j *SenderJob) Name() string {
	return "relance_sender"
}

func (j *SenderJob) Schedule() time.Duration {
	return j.interval
}

func (j *SenderJob) Run(ctx context.Context) error {
	_, err := j.dispatcher.Run(ctx)
	return err
}

// Maintainer runs the daily counter reset and retention purge
type Maintainer interface {
	Run(ctx context.Context) error
}

// MaintenanceJob runs maintenance in-process when asynq is unavailable
type MaintenanceJob struct {
	maintainer Maintainer
}

func NewMaintenanceJob(maintainer Maintainer) *MaintenanceJob {
	return &MaintenanceJob{maintainer: maintainer}
}

func (j *MaintenanceJob) Name() string {
	return "relance_maintenance"
}

// Schedule is hourly. Counter resets only touch rows stamped before today,
// so extra runs are no-ops.
func (j *MaintenanceJob) Schedule() time.Duration {
	return time.Hour
}

func (j *MaintenanceJob) Run(ctx context.Context) error {
	return j.maintainer.Run(ctx)
}
