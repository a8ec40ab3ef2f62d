package issues

import (
	"go-hr-analytics/internal/middleware"
	"go-hr-analytics/internal/report"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	report.RegisterRoutes(r, handler, rbacService, jwtSecret)
}
