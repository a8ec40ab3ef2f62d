package leavers

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
	repo Repository
}

func NewService(repo Repository, optionsCache *cache.OptionsCache, clk clock.Clock, logger ...*zap.Logger) Service {
	return &service{
		Base: report.NewBase(Domain, optionsCache, clk, logger...),
		repo: repo,
	}
}

func (s *service) Import(ctx context.Context, filename string, r io.Reader) (importer.Result, error) {
	return report.Import(ctx, s.Base, filename, r, newNormalizer(s.CurrentYear()), s.repo.ReplaceAll)
}

func (s *service) List(ctx context.Context, q url.Values) ([]Record, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, f)
}

func (s *service) Summary(ctx context.Context, q url.Values) (Summary, error) {
	f, err := buildFilter(q)
	if err != nil {
		return Summary{}, err
	}

	totals, err := s.repo.Totals(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	byReason, err := s.repo.Categories(ctx, f, "reason", "leavers", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	byDept, err := s.repo.Categories(ctx, f, "department", "leavers", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	trend, err := s.repo.Monthly(ctx, f, "leavers")
	if err != nil {
		return Summary{}, err
	}
	tenure, err := s.repo.Histogram(ctx, f, "tenureAtExit", aggregate.TenureBuckets)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		KPIs:         buildKPIs(totals),
		ByReason:     aggregate.FinishCategories(byReason, true),
		ByDepartment: aggregate.FinishCategories(byDept, true),
		MonthlyTrend: trend,
		TenureAtExit: tenure,
	}, nil
}

func buildKPIs(t Totals) KPIs {
	return KPIs{
		TotalLeavers:         t.Leavers,
		AverageAttritionRate: aggregate.Ratio(t.AttritionRateSum, float64(t.Count)),
		VoluntaryLeavers:     t.Voluntary,
		InvoluntaryLeavers:   t.Leavers - t.Voluntary,
		VoluntaryPercent:     aggregate.Percent(float64(t.Voluntary), float64(t.Leavers)),
	}
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
