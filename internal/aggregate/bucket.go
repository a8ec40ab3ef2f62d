package aggregate

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// Bucket is a numeric range. Unbounded ends use math.Inf.
type Bucket struct {
	Label        string
	Min          float64
	Max          float64
	MinInclusive bool
	MaxInclusive bool
}

var (
	// AgeBuckets are half-open so fractional ages still land in exactly one.
	AgeBuckets = []Bucket{
		{Label: "<25", Min: math.Inf(-1), Max: 25},
		{Label: "25-34", Min: 25, Max: 35, MinInclusive: true},
		{Label: "35-44", Min: 35, Max: 45, MinInclusive: true},
		{Label: "45-54", Min: 45, Max: 55, MinInclusive: true},
		{Label: "55+", Min: 55, Max: math.Inf(1), MinInclusive: true},
	}

	// TenureBuckets: a boundary value shared by two ranges stays in the lower
	// one (3 years is "1-3", 5 years is "3-5").
	TenureBuckets = []Bucket{
		{Label: "<1", Min: math.Inf(-1), Max: 1},
		{Label: "1-3", Min: 1, Max: 3, MinInclusive: true, MaxInclusive: true},
		{Label: "3-5", Min: 3, Max: 5, MaxInclusive: true},
		{Label: "5+", Min: 5, Max: math.Inf(1)},
	}
)

func (b Bucket) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if !math.IsInf(b.Min, -1) {
		if b.MinInclusive && v < b.Min || !b.MinInclusive && v <= b.Min {
			return false
		}
	}
	if !math.IsInf(b.Max, 1) {
		if b.MaxInclusive && v > b.Max || !b.MaxInclusive && v >= b.Max {
			return false
		}
	}
	return true
}

// Condition renders the bucket as a range query on field.
func (b Bucket) Condition(field string) bson.M {
	rng := bson.M{}
	if !math.IsInf(b.Min, -1) {
		if b.MinInclusive {
			rng["$gte"] = b.Min
		} else {
			rng["$gt"] = b.Min
		}
	}
	if !math.IsInf(b.Max, 1) {
		if b.MaxInclusive {
			rng["$lte"] = b.Max
		} else {
			rng["$lt"] = b.Max
		}
	}
	return bson.M{field: rng}
}

// Assign returns the index of the bucket holding v, or -1.
func Assign(buckets []Bucket, v float64) int {
	for i, b := range buckets {
		if b.Contains(v) {
			return i
		}
	}
	return -1
}

type BucketCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CountFunc counts the documents matching filter.
type CountFunc func(ctx context.Context, filter bson.M) (int64, error)

// Histogram counts each bucket with its own query, scoped by base.
func Histogram(ctx context.Context, count CountFunc, field string, base bson.M, buckets []Bucket) ([]BucketCount, error) {
	out := make([]BucketCount, 0, len(buckets))
	for _, b := range buckets {
		cond := b.Condition(field)
		f := cond
		if len(base) > 0 {
			f = bson.M{"$and": bson.A{base, cond}}
		}
		n, err := count(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, BucketCount{Label: b.Label, Count: n})
	}
	return out, nil
}
