package bootstrap

import (
	"context"

	"go-hr-analytics/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through zap under the "audit"
// logger name, so they can be routed by the log shipper.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{logger: l.Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	actor := entry.ActorID
	if actor == "" {
		actor = contextutil.GetUserID(ctx)
	}

	fields := append(contextutil.Fields(ctx),
		zap.String("action", entry.Action),
		zap.String("actor_id", actor),
	)
	if len(entry.Meta) > 0 {
		fields = append(fields, zap.Any("meta", entry.Meta))
	}
	l.logger.Info(entry.Message, fields...)
}
