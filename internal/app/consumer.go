package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hr-analytics/internal/config"
	"go-hr-analytics/internal/events"
	"go-hr-analytics/internal/messaging/kafka/consumer"
	"go-hr-analytics/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const accountNotificationsGroup = "hr-analytics-account-mailer"

func newMailer(cfg config.SMTPConfig, logger *zap.Logger) notification.Mailer {
	if cfg.Host == "" {
		return notification.NewLogMailer(logger)
	}
	return notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}

// RunConsumer emails verification and reset codes until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AccountNotificationsTopic,
		GroupID:        accountNotificationsGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	mailer := newMailer(cfg.SMTP, logger)
	if cfg.SMTP.Host == "" {
		log.Warn("SMTP_HOST empty, emails are only logged")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.ConsumeAccountNotifications(ctx, reader, mailer, logger)

	log.Info("consumer shut down")
	return nil
}
