package cache

import (
	"context"
	"encoding/json"
	"time"

	"go-hr-analytics/internal/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsKeyPrefix = "reports:options:"

// Options maps a filter dimension (department, year, ...) to its distinct
// values.
type Options map[string][]string

func OptionsKey(domain string) string {
	return OptionsKeyPrefix + domain
}

// OptionsCache keeps per-domain filter options in Redis. A nil Redis client
// turns it into a pass-through, which is what tests and local runs use.
type OptionsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewOptionsCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *OptionsCache {
	l := zap.L().Named("cache.options")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache.options")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &OptionsCache{rdb: rdb, ttl: ttl, sf: &singleflight.Group{}, logger: l}
}

func (c *OptionsCache) Get(
	ctx context.Context,
	domain string,
	load func(ctx context.Context) (Options, error),
) (Options, error) {
	if c == nil {
		return load(ctx)
	}
	key := OptionsKey(domain)

	// 1. Cek Redis
	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var opts Options
			if json.Unmarshal([]byte(cached), &opts) == nil {
				metrics.ReportCache.WithLabelValues(domain, "hit").Inc()
				return opts, nil
			}
		}
	}
	metrics.ReportCache.WithLabelValues(domain, "miss").Inc()

	// 2. Singleflight supaya dashboard yang dibuka bersamaan cukup satu query
	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		opts, err := load(ctx)
		if err != nil {
			return nil, err
		}

		// 3. Simpan ke Redis
		if c.rdb != nil {
			if payload, err := json.Marshal(opts); err == nil {
				if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
					c.logger.Warn("cache options set failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(Options), nil
}

// Invalidate drops the cached options of domain. Failures are logged only;
// the entry expires on its own.
func (c *OptionsCache) Invalidate(ctx context.Context, domain string) {
	if c == nil || c.rdb == nil {
		return
	}
	key := OptionsKey(domain)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Error("failed to invalidate options cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
