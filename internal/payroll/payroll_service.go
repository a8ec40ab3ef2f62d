package payroll

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
	byDept, err := s.repo.Categories(ctx, f, "department", "totalPayroll", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	trend, err := s.repo.Monthly(ctx, f, "totalPayroll")
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		KPIs:         buildKPIs(totals),
		ByDepartment: aggregate.FinishCategories(byDept, true),
		MonthlyTrend: trend,
		Components:   buildComponents(totals),
	}, nil
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}

func buildKPIs(t Totals) KPIs {
	return KPIs{
		TotalPayroll:              aggregate.Round2(t.TotalPayroll),
		TotalHeadcount:            int64(t.Headcount),
		AveragePayrollPerEmployee: aggregate.Ratio(t.TotalPayroll, t.Headcount),
		TotalRevenue:              aggregate.Round2(t.Revenue),
		PayrollToRevenuePercent:   aggregate.Percent(t.TotalPayroll, t.Revenue),
		TotalCostOfEmployment:     aggregate.Round2(t.TotalCostOfEmployment),
		TotalTax:                  aggregate.Round2(t.Tax),
		TotalLeavers:              int64(t.Leavers),
	}
}

// buildComponents splits pay into its parts; percentages are of the parts'
// own sum, not of totalPayroll.
func buildComponents(t Totals) []Component {
	parts := []Component{
		{Name: "Basic", Total: t.Basic},
		{Name: "Allowances", Total: t.Allowances},
		{Name: "Overtime", Total: t.Overtime},
		{Name: "Bonus", Total: t.Bonus},
		{Name: "Incentives", Total: t.Incentives},
	}
	var sum float64
	for _, p := range parts {
		sum += p.Total
	}
	for i := range parts {
		parts[i].Percent = aggregate.Percent(parts[i].Total, sum)
		parts[i].Total = aggregate.Round2(parts[i].Total)
	}
	return parts
}
