package docstore_test

import (
	"context"
	"testing"

	"go-hr-analytics/internal/shared/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type row struct {
	Department string `bson:"department"`
	Value      int    `bson:"value"`
}

func TestReplaceAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("clears then inserts", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		n, err := docstore.ReplaceAll(ctx, mt.Coll, []row{{"HR", 1}, {"IT", 2}})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})

	mt.Run("empty input only clears", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}))

		n, err := docstore.ReplaceAll(ctx, mt.Coll, []row{})
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})

	mt.Run("failed delete inserts nothing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted",
		}))

		n, err := docstore.ReplaceAll(ctx, mt.Coll, []row{{"HR", 1}})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "clear")
		assert.Zero(mt, n)
	})

	mt.Run("partial insert counts survivors", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 1, Code: 11000, Message: "duplicate key"}),
		)

		n, err := docstore.ReplaceAll(ctx, mt.Coll, []row{{"HR", 1}, {"IT", 2}, {"Ops", 3}})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}

func TestFindAndDistinct(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find decodes the batch", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "department", Value: "HR"}, {Key: "value", Value: 3}},
				bson.D{{Key: "department", Value: "IT"}, {Key: "value", Value: 5}},
			),
		)

		rows, err := docstore.Find[row](ctx, mt.Coll, nil)
		require.NoError(mt, err)
		assert.Equal(mt, []row{{"HR", 3}, {"IT", 5}}, rows)
	})

	mt.Run("distinct drops blanks and sorts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "values", Value: bson.A{"Sales", "", nil, int32(2024), "Finance"}},
		))

		values, err := docstore.DistinctStrings(ctx, mt.Coll, "department")
		require.NoError(mt, err)
		assert.Equal(mt, []string{"2024", "Finance", "Sales"}, values)
	})
}
