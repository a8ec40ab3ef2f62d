package demographics

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

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type Service interface {
	report.Service[Record, Summary]
	Map(ctx context.Context, q url.Values) ([]CityPoint, error)
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

	var out Summary
	if out.KPIs, err = s.repo.KPIs(ctx, f); err != nil {
		return Summary{}, err
	}
	if out.Gender, err = s.categories(ctx, f, "gender"); err != nil {
		return Summary{}, err
	}
	if out.Departments, err = s.categories(ctx, f, "department"); err != nil {
		return Summary{}, err
	}
	if out.Education, err = s.categories(ctx, f, "education"); err != nil {
		return Summary{}, err
	}
	if out.Designations, err = s.categories(ctx, f, "designation"); err != nil {
		return Summary{}, err
	}
	if out.AgeBuckets, err = s.repo.Histogram(ctx, f, "age", aggregate.AgeBuckets); err != nil {
		return Summary{}, err
	}
	if out.TenureBuckets, err = s.repo.Histogram(ctx, f, "tenure", aggregate.TenureBuckets); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (s *service) categories(ctx context.Context, f bson.M, field string) ([]aggregate.CategoryStat, error) {
	stats, err := s.repo.Categories(ctx, f, field, "", aggregate.ByCountDesc)
	if err != nil {
		return nil, err
	}
	return aggregate.FinishCategories(stats, false), nil
}

func (s *service) Map(ctx context.Context, q url.Values) ([]CityPoint, error) {
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return nil, err
	}
	return s.repo.CityMap(ctx, f)
}

func (s *service) Options(ctx context.Context) (cache.Options, error) {
	return s.Base.Options(ctx, s.repo.Options)
}
