package demographics

import (
	"context"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=demographics_repo.go -destination=mock/demographics_repo_mock.go -package=mock
type Repository interface {
	ReplaceAll(ctx context.Context, docs []Record) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]Record, error)
	KPIs(ctx context.Context, filter bson.M) (KPIs, error)
	Categories(ctx context.Context, filter bson.M, field, valueField string, order aggregate.Order) ([]aggregate.CategoryStat, error)
	Histogram(ctx context.Context, filter bson.M, field string, buckets []aggregate.Bucket) ([]aggregate.BucketCount, error)
	CityMap(ctx context.Context, filter bson.M) ([]CityPoint, error)
	Options(ctx context.Context) (cache.Options, error)
}

type repository struct {
	report.Store[Record]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		Store: report.NewStore[Record](db, CollectionName,
			bson.D{{Key: "department", Value: 1}, {Key: "_id", Value: 1}},
			optionFields...),
	}
}

func (r *repository) KPIs(ctx context.Context, f bson.M) (KPIs, error) {
	pipeline := []bson.M{
		{"$match": f},
		{"$group": bson.M{
			"_id":       nil,
			"count":     bson.M{"$sum": 1},
			"ageSum":    bson.M{"$sum": "$age"},
			"tenureSum": bson.M{"$sum": "$tenure"},
			"female": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{bson.M{"$toLower": "$gender"}, "female"}}, 1, 0,
			}}},
		}},
	}
	row, ok, err := docstore.AggregateOne[kpiRow](ctx, r.Collection(), pipeline)
	if err != nil || !ok {
		return KPIs{}, err
	}
	return buildKPIs(row), nil
}

func buildKPIs(row kpiRow) KPIs {
	n := float64(row.Count)
	return KPIs{
		TotalEmployees: row.Count,
		AverageAge:     aggregate.Ratio(row.AgeSum, n),
		AverageTenure:  aggregate.Ratio(row.TenureSum, n),
		FemalePercent:  aggregate.Percent(float64(row.FemaleSize), n),
	}
}

// CityMap counts employees per known city, busiest first.
func (r *repository) CityMap(ctx context.Context, f bson.M) ([]CityPoint, error) {
	pipeline := []bson.M{
		{"$match": f},
		{"$match": bson.M{"latitude": bson.M{"$exists": true}}},
		{"$group": bson.M{
			"_id":       "$city",
			"province":  bson.M{"$first": "$province"},
			"latitude":  bson.M{"$first": "$latitude"},
			"longitude": bson.M{"$first": "$longitude"},
			"count":     bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}
	return docstore.Aggregate[CityPoint](ctx, r.Collection(), pipeline)
}
