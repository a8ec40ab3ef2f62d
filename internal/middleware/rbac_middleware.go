package middleware

import (
	"net/http"

	autherrors "go-hr-analytics/internal/auth/errors"
	"go-hr-analytics/internal/domain"
	"go-hr-analytics/internal/shared/apperror"
	"go-hr-analytics/internal/shared/contextutil"
	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize checks the role put on the context by AuthMiddleware.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context")
			return
		}

		roleStr, _ := role.(string)
		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     roleStr,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			response.AbortError(c, http.StatusInternalServerError, apperror.CodeInternalError, "Internal server error")
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message,
				map[string]string{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
