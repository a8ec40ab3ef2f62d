package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hr-analytics/internal/config"
	"go-hr-analytics/internal/messaging/kafka"
	"go-hr-analytics/internal/messaging/kafka/producer"
	"go-hr-analytics/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	_, sqlDB, err := connectPostgres(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := kafka.EnsureOutboxTable(ctx, sqlDB); err != nil {
		return err
	}

	worker := producer.NewWorker(kafka.NewOutboxRepository(sqlDB), kafkaWriter, 3*time.Second, logger)
	worker.Run(ctx)

	log.Info("worker shut down")
	return nil
}
