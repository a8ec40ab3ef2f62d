package report

import (
	"context"
	"io"

	"go-hr-analytics/internal/importer"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Base carries what every reporting service shares.
type Base struct {
	Domain string
	Cache  *cache.OptionsCache
	Clock  clock.Clock
	Logger *zap.Logger
}

func NewBase(domain string, optionsCache *cache.OptionsCache, clk clock.Clock, logger ...*zap.Logger) Base {
	l := zap.L().Named(domain + ".service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(domain + ".service")
	}
	return Base{
		Domain: domain,
		Cache:  optionsCache,
		Clock:  clock.OrSystem(clk),
		Logger: l,
	}
}

// CurrentYear is the default for rows without a year column.
func (b Base) CurrentYear() int {
	return clock.OrSystem(b.Clock).Now().Year()
}

func (b Base) Options(ctx context.Context, load func(ctx context.Context) (cache.Options, error)) (cache.Options, error) {
	return b.Cache.Get(ctx, b.Domain, load)
}

// Import runs the replace-import and drops the cached filter options once
// the collection changed.
func Import[T any](
	ctx context.Context,
	b Base,
	filename string,
	r io.Reader,
	normalize importer.NormalizeFunc[T],
	replace importer.ReplaceFunc[T],
) (importer.Result, error) {
	log := contextutil.GetLogger(ctx, b.Logger)

	res, err := importer.Run(ctx, b.Domain, filename, r, normalize, replace)
	if err != nil {
		log.Warn("import failed",
			zap.String("domain", b.Domain),
			zap.String("file", filename),
			zap.Int("rows_read", res.RowsRead),
			zap.Int("rows_valid", res.RowsValid),
			zap.Error(err),
		)
		if res.RowsValid > 0 {
			// the delete may already have run
			b.Cache.Invalidate(ctx, b.Domain)
		}
		return res, err
	}

	b.Cache.Invalidate(ctx, b.Domain)
	log.Info("import completed",
		zap.String("domain", b.Domain),
		zap.String("file", filename),
		zap.Int("rows_read", res.RowsRead),
		zap.Int("rows_dropped", res.RowsDropped),
		zap.Int64("inserted", res.Inserted),
	)
	return res, nil
}
