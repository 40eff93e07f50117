// Package exits turns upstream billing events into paid exits of relance targets.
package exits

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"relance-server/internal/clients/kafka"
	"relance-server/internal/observability"

	"github.com/google/uuid"
)

// Event types that mean the referral became a paying user
const (
	EventPaymentSucceeded      = "payment.succeeded"
	EventSubscriptionActivated = "subscription.activated"
)

// EventSource is the stream of billing events
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
	Close() error
}

// Exiter completes the engaged targets of a referral that paid
type Exiter interface {
	ExitOnPayment(ctx context.Context, referralUserID uuid.UUID) (int, error)
}

// ErrInvalidEvent marks an event that can never be processed
var ErrInvalidEvent = errors.New("invalid payment event")

// PaymentConsumer runs one consumer group member per source. Each member
// handles its partitions in order and commits an event only after its exit
// is stored.
type PaymentConsumer struct {
	sources []EventSource
	exiter  Exiter
	logger  *observability.Logger
}

func NewPaymentConsumer(sources []EventSource, exiter Exiter, logger *observability.Logger) *PaymentConsumer {
	return &PaymentConsumer{
		sources: sources,
		exiter:  exiter,
		logger:  logger,
	}
}

// Start consumes until ctx is cancelled or a source fails
func (c *PaymentConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("Starting payment exit consumer with %d workers", len(c.sources)))

	errc := make(chan error, len(c.sources))
	var wg sync.WaitGroup
	for i, source := range c.sources {
		wg.Add(1)
		go func(workerID int, source EventSource) {
			defer wg.Done()
			workerCtx := observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: workerID})
			if err := source.ConsumeEvents(workerCtx, c.consume); err != nil && ctx.Err() == nil {
				errc <- err
			}
		}(i, source)
	}
	wg.Wait()
	close(errc)

	if err := <-errc; err != nil {
		c.logger.Error(ctx, "payment consumer stopped", err)
		return err
	}
	return nil
}

// consume is the per-message handler: an invalid event is skipped so it is
// committed, any other failure is returned so the message is redelivered.
func (c *PaymentConsumer) consume(ctx context.Context, event kafka.EventMessage) error {
	err := c.Handle(ctx, event)
	if errors.Is(err, ErrInvalidEvent) {
		c.logger.Warn(ctx, "skipping payment event: "+err.Error())
		return nil
	}
	return err
}

// Handle processes one event. Events of other types are ignored.
func (c *PaymentConsumer) Handle(ctx context.Context, event kafka.EventMessage) error {
	if event.Type != EventPaymentSucceeded && event.Type != EventSubscriptionActivated {
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	referralID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("%w: user_id %q: %s", ErrInvalidEvent, event.UserID, err.Error())
	}
	if _, err := c.exiter.ExitOnPayment(ctx, referralID); err != nil {
		return fmt.Errorf("failed to exit paid referral: %w", err)
	}
	return nil
}

// Stop closes every event source
func (c *PaymentConsumer) Stop() error {
	c.logger.Info(context.Background(), "Stopping payment exit consumer")
	var errs []error
	for _, source := range c.sources {
		if err := source.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
