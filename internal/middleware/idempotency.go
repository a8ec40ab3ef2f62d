package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
	idempotencyLockTTL  = 30 * time.Second
	IdempotencyTTL      = 24 * time.Hour
)

// Idempotency replays the stored response of a POST that already completed
// under the same Idempotency-Key, and rejects a duplicate that arrives while
// the first is still running. The handler stores the response and releases
// the lock (see StoreIdempotent).
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		caller := c.GetString("user_id_validated")
		if caller == "" {
			caller = c.ClientIP()
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), caller, idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Sudah pernah selesai, kirim ulang hasilnya
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		// 2. Lock atomik, expiry pendek supaya lock hilang kalau server crash
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err == nil && !isNew {
			response.AbortError(c, http.StatusConflict, "PROCESSING", "Your request is still being processed, please wait.")
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotent saves resp under the request's idempotency key (if any)
// and drops the lock. Call it from the handler once the outcome is known.
func StoreIdempotent(c *gin.Context, rdb *redis.Client, resp any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		defer rdb.Del(ctx, lk)
	}
	ck := c.GetString(IdempotencyCacheKey)
	if ck == "" || resp == nil {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		_ = rdb.Set(ctx, ck, payload, IdempotencyTTL).Err()
	}
}

// ReleaseIdempotent drops the lock without storing anything, so a failed
// attempt can be retried with the same key.
func ReleaseIdempotent(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		_ = rdb.Del(c.Request.Context(), lk).Err()
	}
}
