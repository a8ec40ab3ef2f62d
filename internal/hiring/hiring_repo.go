package hiring

import (
	"context"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=hiring_repo.go -destination=mock/hiring_repo_mock.go -package=mock
type Repository interface {
	ReplaceAll(ctx context.Context, docs []Record) (int64, error)
	Find(ctx context.Context, filter bson.M) ([]Record, error)
	Totals(ctx context.Context, filter bson.M) (Totals, error)
	Categories(ctx context.Context, filter bson.M, field, valueField string, order aggregate.Order) ([]aggregate.CategoryStat, error)
	Monthly(ctx context.Context, filter bson.M, valueField string) ([]aggregate.MonthlyStat, error)
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
			"_id":                 nil,
			"count":               bson.M{"$sum": 1},
			"applications":        bson.M{"$sum": "$stageCounts.applications"},
			"shortlisted":         bson.M{"$sum": "$stageCounts.shortlisted"},
			"interviewed":         bson.M{"$sum": "$stageCounts.interviewed"},
			"offers":              bson.M{"$sum": "$stageCounts.offers"},
			"hired":               bson.M{"$sum": "$stageCounts.hired"},
			"hires":               bson.M{"$sum": "$hires"},
			"timeToHire":          bson.M{"$sum": "$timeToHire"},
			"offerAcceptanceRate": bson.M{"$sum": "$offerAcceptanceRate"},
		}},
	}
	t, _, err := docstore.AggregateOne[Totals](ctx, r.Collection(), pipeline)
	return t, err
}
