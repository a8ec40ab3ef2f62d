package issues

import (
	"context"
	"io"
	"net/url"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
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
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, f)
}

func (s *service) Summary(ctx context.Context, q url.Values) (Summary, error) {
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return Summary{}, err
	}

	totals, err := s.repo.Totals(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	byType, err := s.repo.Categories(ctx, f, "issueType", "issuesRaised", aggregate.ByNameAsc)
	if err != nil {
		return Summary{}, err
	}
	byStatus, err := s.repo.Categories(ctx, f, "status", "issuesRaised", aggregate.ByCountDesc)
	if err != nil {
		return Summary{}, err
	}
	byDept, err := s.repo.Categories(ctx, f, "department", "issuesRaised", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	trend, err := s.repo.Monthly(ctx, f, "issuesRaised")
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		KPIs:         buildKPIs(totals),
		ByType:       aggregate.FinishCategories(byType, true),
		ByStatus:     aggregate.FinishCategories(byStatus, false),
		ByDepartment: aggregate.FinishCategories(byDept, true),
		MonthlyTrend: trend,
	}, nil
}

func buildKPIs(t Totals) KPIs {
	return KPIs{
		TotalRaised:           t.Raised,
		TotalResolved:         t.Resolved,
		ResolutionRatePercent: aggregate.Percent(float64(t.Resolved), float64(t.Raised)),
		AverageResolutionTime: aggregate.Ratio(t.ResolutionTimeSum, float64(t.Count)),
		AverageSLACompliance:  aggregate.Ratio(t.SLASum, float64(t.Count)),
		Open:                  t.Open,
		Closed:                t.Closed,
	}
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
