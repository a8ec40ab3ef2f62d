package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hr-analytics/internal/rbac"
	rbacMock "go-hr-analytics/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func setupRBACHandlerTest(t *testing.T) (*rbacMock.MockService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	handler := rbac.NewHandler(svc)

	router := gin.New()
	router.POST("/rbac/enforce", func(c *gin.Context) {
		c.Set("role", "hr")
		c.Next()
	}, handler.Enforce)
	router.GET("/rbac/roles", handler.ListRoles)
	return svc, router
}

func TestHandler_Enforce(t *testing.T) {
	t.Run("role comes from token context", func(t *testing.T) {
		svc, router := setupRBACHandlerTest(t)
		svc.EXPECT().
			Enforce(rbac.EnforceRequest{Role: "hr", Resource: "payroll", Action: "upload"}).
			Return(true, nil)

		body, _ := json.Marshal(map[string]string{"role": "admin", "resource": "payroll", "action": "upload"})
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var resp rbac.EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("missing action", func(t *testing.T) {
		svc, router := setupRBACHandlerTest(t)
		svc.EXPECT().Enforce(gomock.Any()).Times(0)

		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"payroll"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListRoles(t *testing.T) {
	svc, router := setupRBACHandlerTest(t)
	svc.EXPECT().ListRoles().
		Return([]rbac.RoleResponse{{Name: "viewer", Permissions: []string{"*:read"}}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
}
