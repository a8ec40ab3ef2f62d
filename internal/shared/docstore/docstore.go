// Package docstore holds the MongoDB primitives shared by every reporting
// collection.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReplaceAll empties coll and inserts docs unordered.
//
// This is two separate operations, not a transaction: readers between the
// delete and the insert see an empty collection, and two concurrent
// replaces of the same collection race (the last insert to finish wins).
// A failing delete aborts before anything is inserted. A failing document
// does not stop the rest; the returned count covers only the documents that
// made it in.
func ReplaceAll[T any](ctx context.Context, coll *mongo.Collection, docs []T) (int64, error) {
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, fmt.Errorf("clear %s: %w", coll.Name(), err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	payload := make([]interface{}, len(docs))
	for i := range docs {
		payload[i] = docs[i]
	}

	res, err := coll.InsertMany(ctx, payload, options.InsertMany().SetOrdered(false))
	if err == nil {
		return int64(len(res.InsertedIDs)), nil
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) && bwe.WriteConcernError == nil {
		inserted := int64(len(docs) - len(bwe.WriteErrors))
		if inserted > 0 {
			return inserted, nil
		}
	}
	return 0, fmt.Errorf("insert into %s: %w", coll.Name(), err)
}

// Find decodes every match. It never returns a nil slice.
func Find[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Aggregate runs pipeline and decodes every output document.
func Aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateOne returns the first output document, or the zero value and
// false when the pipeline produced nothing.
func AggregateOne[T any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) (T, bool, error) {
	var zero T
	rows, err := Aggregate[T](ctx, coll, pipeline)
	if err != nil || len(rows) == 0 {
		return zero, false, err
	}
	return rows[0], true, nil
}

// Count counts documents matching filter.
func Count(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

// DistinctStrings returns the sorted, non-empty distinct values of field
// rendered as strings (years come back as "2024").
func DistinctStrings(ctx context.Context, coll *mongo.Collection, field string) ([]string, error) {
	values, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// DistinctOptions collects DistinctStrings for each field into one map.
func DistinctOptions(ctx context.Context, coll *mongo.Collection, fields ...string) (map[string][]string, error) {
	out := make(map[string][]string, len(fields))
	for _, f := range fields {
		values, err := DistinctStrings(ctx, coll, f)
		if err != nil {
			return nil, fmt.Errorf("distinct %s.%s: %w", coll.Name(), f, err)
		}
		out[f] = values
	}
	return out, nil
}
