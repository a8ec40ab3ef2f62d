package hiring

import (
	"net/http"

	"go-hr-analytics/internal/bootstrap"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	*report.Handler[Record, Summary]
	service Service
}

func NewHandler(service Service, uploadCfg report.UploadConfig, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	return &Handler{
		Handler: report.NewHandler[Record, Summary](Domain, service, uploadCfg, audit, logger...),
		service: service,
	}
}

func (h *Handler) GetFunnel(c *gin.Context) {
	funnel, err := h.service.Funnel(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, funnel, nil)
}
