package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hr-analytics/internal/domain"
	"go-hr-analytics/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

const secret = "test-secret"

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decode(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

type roleRBAC struct{ allow map[string]bool }

func (r roleRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return r.allow[req.Role+":"+req.Resource+":"+req.Action], nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rbac := roleRBAC{allow: map[string]bool{"hr:payroll:upload": true}}
	r.POST("/upload",
		middleware.AuthMiddleware(secret),
		middleware.ExtractUserID(),
		middleware.RBACAuthorize(rbac, "payroll", "upload"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user": c.GetString("user_id_validated"), "role": c.GetString("role")})
		})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter()
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decode(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "role": "hr", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", decode(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u1", "exp": exp}).SignedString([]byte("other"))
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("viewer forbidden", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "role": "viewer", "exp": exp})
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("hr via cookie allowed", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{"user_id": "u1", "role": "hr", "exp": exp})
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"u1","role":"hr"}`, w.Body.String())
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", middleware.RateLimitByIP(rate.Limit(0.0001), 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, w.Body.Bytes()).Error.Code)
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("first request runs handler and stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/apply:192.0.2.1:k1"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"id":"a1"}`), middleware.IdempotencyTTL).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		r := gin.New()
		r.POST("/apply", middleware.Idempotency(rdb), func(c *gin.Context) {
			resp := map[string]string{"id": "a1"}
			middleware.StoreIdempotent(c, rdb, resp)
			c.JSON(http.StatusCreated, resp)
		})

		req := httptest.NewRequest(http.MethodPost, "/apply", nil)
		req.Header.Set("Idempotency-Key", "k1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/apply:192.0.2.1:k1"
		mock.ExpectGet(cacheKey).SetVal(`{"id":"a1"}`)

		called := false
		r := gin.New()
		r.POST("/apply", middleware.Idempotency(rdb), func(c *gin.Context) { called = true })

		req := httptest.NewRequest(http.MethodPost, "/apply", nil)
		req.Header.Set("Idempotency-Key", "k1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
		assert.JSONEq(t, `{"id":"a1"}`, string(decode(t, w.Body.Bytes()).Data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/apply:192.0.2.1:k1"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/apply", middleware.Idempotency(rdb), func(c *gin.Context) { t.Fatal("handler must not run") })

		req := httptest.NewRequest(http.MethodPost, "/apply", nil)
		req.Header.Set("Idempotency-Key", "k1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PROCESSING", decode(t, w.Body.Bytes()).Error.Code)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("well formed id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("garbage id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, "bad id\nwith newline")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		rid := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, "bad id\nwith newline", rid)
		assert.Len(t, rid, 36)
	})
}
