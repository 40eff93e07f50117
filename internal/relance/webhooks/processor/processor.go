package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"relance-server/internal/observability"
	"relance-server/internal/store"
)

// DeliveryStore defines the database operations required by WebhookProcessor
type DeliveryStore interface {
	UpdateDeliveryEngagement(ctx context.Context, providerMessageID, event string, at time.Time) (int64, error)
}

var ErrMissingMessageID = errors.New("callback has no provider message id")

// Twilio message statuses that change a delivery. queued, accepted, sending
// and sent are intermediate and ignored.
var twilioEvents = map[string]string{
	"delivered":   store.DeliveryEventDelivered,
	"read":        store.DeliveryEventOpened,
	"failed":      store.DeliveryEventFailed,
	"undelivered": store.DeliveryEventFailed,
}

// Resend webhook types that change a delivery
var resendEvents = map[string]string{
	"email.delivered": store.DeliveryEventDelivered,
	"email.opened":    store.DeliveryEventOpened,
	"email.clicked":   store.DeliveryEventClicked,
	"email.bounced":   store.DeliveryEventBounced,
}

type WebhookProcessor struct {
	store  DeliveryStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store DeliveryStore, logger *observability.Logger) WebhookProcessor {
	return WebhookProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the processor's time source
func (p WebhookProcessor) WithClock(now func() time.Time) WebhookProcessor {
	p.now = now
	return p
}

// HandleTwilioStatus applies a Twilio status callback to its delivery
func (p *WebhookProcessor) HandleTwilioStatus(ctx context.Context, messageSID, status string) error {
	event, ok := twilioEvents[status]
	if !ok {
		return nil
	}
	return p.apply(ctx, "twilio", messageSID, event, p.now())
}

// HandleResendEvent applies a Resend webhook to its delivery. A zero at uses the current time.
func (p *WebhookProcessor) HandleResendEvent(ctx context.Context, eventType, emailID string, at time.Time) error {
	event, ok := resendEvents[eventType]
	if !ok {
		return nil
	}
	if at.IsZero() {
		at = p.now()
	}
	return p.apply(ctx, "resend", emailID, event, at)
}

// apply treats an unknown message ID as success: callbacks for test sends and
// purged targets have no delivery row.
func (p *WebhookProcessor) apply(ctx context.Context, provider, messageID, event string, at time.Time) error {
	if messageID == "" {
		return ErrMissingMessageID
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "provider", Value: provider},
		observability.Field{Key: "provider_message_id", Value: messageID},
		observability.Field{Key: "delivery_event", Value: event},
	)

	rows, err := p.store.UpdateDeliveryEngagement(ctx, messageID, event, at.UTC())
	if err != nil {
		p.logger.Error(ctx, "failed to record delivery event", err)
		return err
	}
	if rows == 0 {
		p.logger.Debug(ctx, "no delivery matches provider message id")
		return nil
	}
	p.logger.Debug(ctx, "delivery event recorded")
	return nil
}
