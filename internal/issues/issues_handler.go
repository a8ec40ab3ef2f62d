package issues

import (
	"go-hr-analytics/internal/bootstrap"
	"go-hr-analytics/internal/report"

	"go.uber.org/zap"
)

type Handler = report.Handler[Record, Summary]

func NewHandler(service Service, uploadCfg report.UploadConfig, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	return report.NewHandler[Record, Summary](Domain, service, uploadCfg, audit, logger...)
}
