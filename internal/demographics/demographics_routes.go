package demographics

import (
	"go-hr-analytics/internal/middleware"
	"go-hr-analytics/internal/report"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	report.RegisterRoutes(r, handler.Handler, rbacService, jwtSecret,
		report.Route{Path: "/map", Handler: handler.Map},
	)
}
