package leavers

import (
	"context"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=leavers_repo.go -destination=mock/leavers_repo_mock.go -package=mock
type Repository interface {
	ReplaceAll(ctx context.Context, docs []Record) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]Record, error)
	Totals(ctx context.Context, filter bson.M) (Totals, error)
	Categories(ctx context.Context, filter bson.M, field, valueField string, order aggregate.Order) ([]aggregate.CategoryStat, error)
	Monthly(ctx context.Context, filter bson.M, valueField string) ([]aggregate.MonthlyStat, error)
	Histogram(ctx context.Context, filter bson.M, field string, buckets []aggregate.Bucket) ([]aggregate.BucketCount, error)
	Options(ctx context.Context) (cache.Options, error)
}

type repository struct {
	report.Store[Record]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		Store: report.NewStore[Record](db, CollectionName,
			bson.D{{Key: "year", Value: 1}, {Key: "department", Value: 1}, {Key: "_id", Value: 1}},
			optionFields...),
	}
}

func (r *repository) Totals(ctx context.Context, f bson.M) (Totals, error) {
	pipeline := []bson.M{
		{"$match": f},
		{"$group": bson.M{
			"_id":           nil,
			"count":         bson.M{"$sum": 1},
			"leavers":       bson.M{"$sum": "$leavers"},
			"attritionRate": bson.M{"$sum": "$attritionRate"},
			"voluntary":     bson.M{"$sum": bson.M{"$cond": bson.A{"$voluntary", "$leavers", 0}}},
		}},
	}
	t, _, err := docstore.AggregateOne[Totals](ctx, r.Collection(), pipeline)
	return t, err
}
