package middleware

import (
	"regexp"

	"go-hr-analytics/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// incoming IDs end up in logs, so only short token-like values are trusted
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func requestIDFrom(c *gin.Context) string {
	if rid := c.GetString("request_id"); rid != "" {
		return rid
	}
	if rid := c.GetHeader(RequestIDHeader); validRequestID.MatchString(rid) {
		return rid
	}
	return uuid.NewString()
}

// RequestID echoes a well-formed X-Request-ID or mints a new one, and puts
// it on both the gin and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestIDFrom(c)
		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
