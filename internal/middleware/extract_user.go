package middleware

import (
	"net/http"

	"go-hr-analytics/internal/shared/contextutil"
	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractUserID runs after AuthMiddleware. It pins the validated user ID on
// the gin context and on the request context, and tags the request logger.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated")
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format")
			return
		}

		c.Set("user_id_validated", userIDStr)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userIDStr)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", userIDStr)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
