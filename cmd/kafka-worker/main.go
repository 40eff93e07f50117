package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"relance-server/internal/clients/kafka"
	"relance-server/internal/config"
	"relance-server/internal/observability"
	"relance-server/internal/relance/exits"
	targetsProcessor "relance-server/internal/relance/targets/processor"
	"relance-server/internal/store"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting relance payment exit consumer...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Consumer group members, one reader each
	workerCount := 4
	if raw := os.Getenv("KAFKA_WORKER_POOL_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			workerCount = parsed
		}
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.GetDB().Close()

	targets := targetsProcessor.New(&dataStore, logger)

	brokers := kafka.SplitBrokers(cfg.Kafka.Brokers)
	sources := make([]exits.EventSource, 0, workerCount)
	for i := 0; i < workerCount; i++ {
		sources = append(sources, kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.PaymentTopic,
			GroupID: cfg.Kafka.ConsumerGroup,
		}, logger))
	}

	paymentConsumer := exits.NewPaymentConsumer(sources, &targets, logger)

	logger.Info(ctx, fmt.Sprintf(`Payment exit consumer configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		workerCount, brokers, cfg.Kafka.PaymentTopic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := paymentConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "payment exit consumer error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumer...")
	case <-done:
	}
	cancel()
	<-done

	if err := paymentConsumer.Stop(); err != nil {
		logger.Error(ctx, "error stopping payment exit consumer", err)
	}

	logger.Info(ctx, "Payment exit consumer stopped")
}
