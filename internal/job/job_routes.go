package job

import (
	"go-hr-analytics/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the public job board and the admin endpoints.
// Admin routes need job:manage or application:manage.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string, rdb *redis.Client) {
	authed := []gin.HandlerFunc{middleware.AuthMiddleware(jwtSecret), middleware.ExtractUserID()}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.ListJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.POST("/:id/apply",
			middleware.RateLimitByIP(0.2, 5),
			middleware.Idempotency(rdb),
			handler.Apply,
		)
	}

	manageJobs := jobs.Group("", authed...)
	manageJobs.Use(middleware.RBACAuthorize(rbacService, "job", "manage"))
	{
		manageJobs.POST("", handler.CreateJob)
		manageJobs.PUT("/:id", handler.UpdateJob)
		manageJobs.DELETE("/:id", handler.DeleteJob)
	}

	jobApps := jobs.Group("", authed...)
	jobApps.Use(middleware.RBACAuthorize(rbacService, "application", "manage"))
	jobApps.GET("/:id/applications", handler.ListJobApplications)

	apps := r.Group("/applications", authed...)
	apps.Use(middleware.RBACAuthorize(rbacService, "application", "manage"))
	{
		apps.GET("", handler.ListApplications)
		apps.PATCH("/:id/status", handler.UpdateApplicationStatus)
		apps.GET("/:id/resume", handler.DownloadResume)
	}
}
