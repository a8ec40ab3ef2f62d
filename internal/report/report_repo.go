package report

import (
	"context"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the collection access every reporting repository embeds.
type Store[T any] struct {
	coll          *mongo.Collection
	optionFields  []string
	defaultSortBy bson.D
}

func NewStore[T any](db *mongo.Database, collection string, defaultSort bson.D, optionFields ...string) Store[T] {
	return Store[T]{
		coll:          db.Collection(collection),
		optionFields:  optionFields,
		defaultSortBy: defaultSort,
	}
}

func (s Store[T]) Collection() *mongo.Collection {
	return s.coll
}

// ReplaceAll swaps the collection contents (delete-all then insert-many).
func (s Store[T]) ReplaceAll(ctx context.Context, docs []T) (int64, error) {
	return docstore.ReplaceAll(ctx, s.coll, docs)
}

func (s Store[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find()
	if len(s.defaultSortBy) > 0 {
		opts.SetSort(s.defaultSortBy)
	}
	return docstore.Find[T](ctx, s.coll, filter, opts)
}

func (s Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return docstore.Count(ctx, s.coll, filter)
}

// Categories groups by field; valueField "" counts only.
func (s Store[T]) Categories(ctx context.Context, filter bson.M, field, valueField string, order aggregate.Order) ([]aggregate.CategoryStat, error) {
	return docstore.Aggregate[aggregate.CategoryStat](ctx, s.coll, aggregate.CategoryPipeline(filter, field, valueField, order))
}

func (s Store[T]) Monthly(ctx context.Context, filter bson.M, valueField string) ([]aggregate.MonthlyStat, error) {
	stats, err := docstore.Aggregate[aggregate.MonthlyStat](ctx, s.coll, aggregate.MonthlyPipeline(filter, valueField))
	if err != nil {
		return nil, err
	}
	return aggregate.SortMonthly(stats), nil
}

func (s Store[T]) Histogram(ctx context.Context, filter bson.M, field string, buckets []aggregate.Bucket) ([]aggregate.BucketCount, error) {
	return aggregate.Histogram(ctx, s.Count, field, filter, buckets)
}

func (s Store[T]) Options(ctx context.Context) (cache.Options, error) {
	opts, err := docstore.DistinctOptions(ctx, s.coll, s.optionFields...)
	if err != nil {
		return nil, err
	}
	return cache.Options(opts), nil
}
