package report

import (
	"go-hr-analytics/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Route is an extra read endpoint a domain mounts next to the standard
// four (the demographics map, the hiring funnel).
type Route struct {
	Path    string
	Handler gin.HandlerFunc
}

// RegisterRoutes mounts /<domain> with auth; reads need <domain>:read and
// uploads <domain>:upload.
func RegisterRoutes[T any, S any](
	r *gin.RouterGroup,
	handler *Handler[T, S],
	rbacService middleware.RBACService,
	jwtSecret string,
	extra ...Route,
) {
	resource := handler.Domain()
	read := middleware.RBACAuthorize(rbacService, resource, "read")

	group := r.Group("/" + resource)
	group.Use(middleware.AuthMiddleware(jwtSecret), middleware.ExtractUserID())
	{
		group.POST("/upload", middleware.RBACAuthorize(rbacService, resource, "upload"), handler.Upload)
		group.GET("", read, handler.GetAll)
		group.GET("/summary", read, handler.GetSummary)
		group.GET("/options", read, handler.GetOptions)
		for _, e := range extra {
			group.GET(e.Path, read, e.Handler)
		}
	}
}
