package rbac

import (
	"go-hr-analytics/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/roles", middleware.RBACAuthorize(service, "role", "read"), handler.ListRoles)
	}
}
