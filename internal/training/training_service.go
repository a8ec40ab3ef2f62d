package training

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
	byType, err := s.repo.Categories(ctx, f, "trainingType", "trainingHours", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	byDept, err := s.repo.Categories(ctx, f, "department", "trainingHours", aggregate.ByTotalDesc)
	if err != nil {
		return Summary{}, err
	}
	trend, err := s.repo.Monthly(ctx, f, "trainingHours")
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		KPIs:         buildKPIs(totals),
		ByType:       aggregate.FinishCategories(byType, true),
		ByDepartment: aggregate.FinishCategories(byDept, true),
		MonthlyTrend: trend,
	}, nil
}

func buildKPIs(t Totals) KPIs {
	return KPIs{
		TotalTrainings:              t.TrainingsConducted,
		TotalHours:                  aggregate.Round2(t.TrainingHours),
		TotalParticipants:           t.Participants,
		AverageParticipationPercent: aggregate.Ratio(t.ParticipationPercent, float64(t.Count)),
		HoursPerParticipant:         aggregate.Ratio(t.TrainingHours, float64(t.Participants)),
	}
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
