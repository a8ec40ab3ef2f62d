package demographics

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

// Map returns per-city headcount with coordinates for the map widget.
func (h *Handler) Map(c *gin.Context) {
	points, err := h.service.Map(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if points == nil {
		points = []CityPoint{}
	}
	response.Success(c, http.StatusOK, points, nil)
}
