package auth

import (
	"go-hr-analytics/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/verify", middleware.RateLimitByIP(0.2, 5), handler.Verify)
		auth.POST("/resend-code", middleware.RateLimitByIP(0.05, 2), handler.ResendCode)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.05, 2), handler.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.2, 5), handler.ResetPassword)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
