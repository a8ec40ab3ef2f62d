package consumer

import (
	"context"
	"encoding/json"

	"go-hr-analytics/internal/events"
	"go-hr-analytics/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeAccountNotifications emails verification and reset codes. Every
// message is committed once handled, including ones that failed to send;
// the user can ask for a new code.
func ConsumeAccountNotifications(
	ctx context.Context,
	reader MessageReader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.account_notifications")
	log.Info("account notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("account notification consumer stopped")
				return
			}
			log.Error("fetch account notification failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, msg, mailer, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit account notification failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, mailer notification.Mailer, log *zap.Logger) {
	log = log.With(zap.String("request_id", headerValue(msg, "request_id")), zap.Int64("offset", msg.Offset))

	var event events.AccountNotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode account notification failed", zap.Error(err))
		return
	}

	email, err := notification.Render(event)
	if err != nil {
		log.Error("render account notification failed",
			zap.String("event_type", event.EventType),
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
		return
	}

	if err := mailer.Send(ctx, email); err != nil {
		log.Error("send account notification failed",
			zap.String("event_type", event.EventType),
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
		return
	}

	log.Info("account notification sent",
		zap.String("event_type", event.EventType),
		zap.String("user_id", event.UserID),
	)
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
