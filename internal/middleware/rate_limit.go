package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-hr-analytics/internal/shared/apperror"
	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a key may stay silent before its bucket is
// dropped. A dropped key simply starts again with a full burst.
const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter hands out one token bucket per key (client IP or user).
type keyedLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	r         rate.Limit // request per detik
	b         int        // burst
	lastSweep time.Time
	now       func() time.Time
}

func newKeyedLimiter(r rate.Limit, b int) *keyedLimiter {
	return &keyedLimiter{
		buckets: make(map[string]*bucket),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (l *keyedLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, bk := range l.buckets {
			if now.Sub(bk.lastSeen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	bk, ok := l.buckets[key]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[key] = bk
	}
	bk.lastSeen = now
	return bk.limiter.AllowN(now, 1)
}

// RateLimitByIP: r = request per detik, b = burst
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			response.AbortError(c, http.StatusTooManyRequests, apperror.CodeTooMany, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser falls through for anonymous requests.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.allow(userID) {
			response.AbortError(c, http.StatusTooManyRequests, apperror.CodeTooMany, "Too many requests from this user")
			return
		}
		c.Next()
	}
}
