package hiring

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
	Funnel(ctx context.Context, q url.Values) (Funnel, error)
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

// Funnel sums stage counts over the filtered records; no records means all
// zeros.
func (s *service) Funnel(ctx context.Context, q url.Values) (Funnel, error) {
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return Funnel{}, err
	}
	totals, err := s.repo.Totals(ctx, f)
	if err != nil {
		return Funnel{}, err
	}
	return totals.Funnel, nil
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
	byDept, err := s.repo.Categories(ctx, f, "department", "hires", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	trend, err := s.repo.Monthly(ctx, f, "hires")
	if err != nil {
		return Summary{}, err
	}

	n := float64(totals.Count)
	return Summary{
		KPIs: KPIs{
			TotalHires:                 totals.Hires,
			AverageTimeToHire:          aggregate.Ratio(totals.TimeToHireSum, n),
			AverageOfferAcceptanceRate: aggregate.Ratio(totals.OfferAcceptanceRateSum, n),
			ApplicationToHirePercent:   aggregate.Percent(float64(totals.Funnel.Hired), float64(totals.Funnel.Applications)),
		},
		Funnel:       totals.Funnel,
		ByDepartment: aggregate.FinishCategories(byDept, true),
		MonthlyTrend: trend,
	}, nil
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
