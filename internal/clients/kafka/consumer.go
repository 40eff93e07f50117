package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"relance-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// EventMessage is the envelope the user service publishes billing events in
type EventMessage struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	UserID    string                 `json:"user_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// Default bounds of the redelivery backoff of a failing message
const (
	DefaultRetryBackoff = time.Second
	DefaultMaxBackoff   = 30 * time.Second
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader       messageReader
	logger       *observability.Logger
	retryBackoff time.Duration
	maxBackoff   time.Duration
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// SplitBrokers turns a comma separated broker list into addresses
func SplitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 1
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  config.Brokers,
		Topic:    config.Topic,
		GroupID:  config.GroupID,
		MinBytes: config.MinBytes,
		MaxBytes: config.MaxBytes,
		// Payments published before the first deploy still need to exit targets
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0, // Manual commit
	})

	return newConsumer(reader, logger)
}

func newConsumer(reader messageReader, logger *observability.Logger) *Consumer {
	return &Consumer{
		reader:       reader,
		logger:       logger,
		retryBackoff: DefaultRetryBackoff,
		maxBackoff:   DefaultMaxBackoff,
	}
}

// DecodeEvent parses a raw message value into an EventMessage
func DecodeEvent(value []byte) (EventMessage, error) {
	var event EventMessage
	if err := json.Unmarshal(value, &event); err != nil {
		return EventMessage{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Type == "" {
		return EventMessage{}, errors.New("event has no type")
	}
	return event, nil
}

// ConsumeEvents continuously consumes events and processes them. A message is
// committed only once handler succeeds. A failing message is retried with
// backoff and blocks its partition, so no later offset is committed past it.
// Undecodable messages are committed and skipped.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, EventMessage) error) error {
	c.logger.Info(ctx, "Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info(ctx, "Stopping Kafka consumer")
				return ctx.Err()
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		event, err := DecodeEvent(msg.Value)
		if err != nil {
			c.logger.Error(ctx, "failed to decode event", err)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error(ctx, "failed to commit message", err)
			}
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)

		if err := c.handleWithRetry(msgCtx, event, handler); err != nil {
			// Not committed, the group redelivers it on restart
			c.logger.Info(ctx, "Stopping Kafka consumer")
			return err
		}

		if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.Error(msgCtx, "failed to commit message", err)
		}
		c.logger.Debug(msgCtx, fmt.Sprintf("processed event %s", event.Type))
	}
}

// handleWithRetry runs handler until it succeeds or ctx is done
func (c *Consumer) handleWithRetry(ctx context.Context, event EventMessage, handler func(context.Context, EventMessage) error) error {
	backoff := c.retryBackoff
	for attempt := 1; ; attempt++ {
		err := handler(ctx, event)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		retryCtx := observability.WithFields(ctx,
			observability.Field{Key: "attempt", Value: attempt},
			observability.Field{Key: "retry_in", Value: backoff.String()},
		)
		c.logger.Error(retryCtx, "failed to process event", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, c.maxBackoff)
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
