package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	ActorID string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
