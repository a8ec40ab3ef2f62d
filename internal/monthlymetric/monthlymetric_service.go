package monthlymetric

import (
	"context"
	"io"
	"net/url"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/importer"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/clock"

	"go.uber.org/zap"
)

type Service interface {
	report.Service[Record, Summary]
}

type service struct {
	report.Base
	kind          Kind
	defaultMonths int
	repo          Repository
}

func NewService(kind Kind, repo Repository, defaultMonths int, optionsCache *cache.OptionsCache, clk clock.Clock, logger ...*zap.Logger) Service {
	return &service{
		Base:          report.NewBase(kind.Domain, optionsCache, clk, logger...),
		kind:          kind,
		defaultMonths: defaultMonths,
		repo:          repo,
	}
}

func (s *service) Import(ctx context.Context, filename string, r io.Reader) (importer.Result, error) {
	return report.Import(ctx, s.Base, filename, r, newNormalizer(s.kind, s.CurrentYear()), s.repo.ReplaceAll)
}

func (s *service) List(ctx context.Context, q url.Values) ([]Record, error) {
	f, _, err := buildFilter(s.kind, q, s.Clock.Now(), s.defaultMonths)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, f)
}

func (s *service) Summary(ctx context.Context, q url.Values) (Summary, error) {
	f, window, err := buildFilter(s.kind, q, s.Clock.Now(), s.defaultMonths)
	if err != nil {
		return Summary{}, err
	}

	totals, err := s.repo.Totals(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	byDept, err := s.repo.Categories(ctx, f, "department", "value", aggregate.ByAverageDesc)
	if err != nil {
		return Summary{}, err
	}

	var trend []TrendPoint
	if len(window) > 0 {
		// the window carries month names only, so group by name
		byMonth, err := s.repo.Categories(ctx, f, "month", "value", aggregate.ByNameAsc)
		if err != nil {
			return Summary{}, err
		}
		trend = buildTrend(s.kind, byMonth, window)
	} else {
		monthly, err := s.repo.Monthly(ctx, f, "value")
		if err != nil {
			return Summary{}, err
		}
		trend = buildYearTrend(s.kind, monthly)
	}
	return Summary{
		KPIs:         buildKPIs(totals, trend),
		ByDepartment: aggregate.FinishCategories(byDept, false),
		Trend:        trend,
	}, nil
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
