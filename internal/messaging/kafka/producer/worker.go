package producer

import (
	"context"
	"time"

	"go-hr-analytics/internal/messaging/kafka"

	"go.uber.org/zap"
)

const defaultBatchSize = 50

// Worker relays pending outbox rows to Kafka.
type Worker struct {
	repo         kafka.OutboxRepository
	writer       MessageWriter
	logger       *zap.Logger
	pollInterval time.Duration
	batchSize    int
}

func NewWorker(repo kafka.OutboxRepository, writer MessageWriter, pollInterval time.Duration, logger *zap.Logger) *Worker {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Worker{
		repo:         repo,
		writer:       writer,
		logger:       logger.Named("kafka.producer.worker"),
		pollInterval: pollInterval,
		batchSize:    defaultBatchSize,
	}
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.pollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := w.ProcessOnce(ctx); err != nil {
				w.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// ProcessOnce publishes one batch and returns how many events were sent.
// A failed publish is marked for a delayed retry; the rest of the batch
// still goes out.
func (w *Worker) ProcessOnce(ctx context.Context) (int, error) {
	events, err := w.repo.ListPending(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	w.logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		log := w.logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.String("request_id", event.RequestID),
		)

		if err := w.writer.WriteMessages(ctx, toMessage(event)); err != nil {
			log.Error("publish outbox event failed", zap.Int("retry_count", event.RetryCount), zap.Error(err))
			if markErr := w.repo.MarkFailed(ctx, event, err.Error()); markErr != nil {
				log.Error("mark outbox failed failed", zap.Error(markErr))
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed", zap.Error(err))
			continue
		}
		sent++
		log.Info("outbox event sent")
	}
	return sent, nil
}
