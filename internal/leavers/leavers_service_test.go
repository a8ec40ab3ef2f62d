package leavers_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	filtererrors "go-hr-analytics/internal/filter/errors"
	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/leavers"
	leaversMock "go-hr-analytics/internal/leavers/mock"
	"go-hr-analytics/internal/shared/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"
)

var fixedClock = clock.Fixed(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC))

func setupLeaversTest(t *testing.T) (leavers.Service, *leaversMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := leaversMock.NewMockRepository(ctrl)
	return leavers.NewService(repo, nil, fixedClock), repo
}

func TestLeaversService_Import(t *testing.T) {
	t.Run("out of range count falls back to zero", func(t *testing.T) {
		svc, repo := setupLeaversTest(t)

		var stored []leavers.Record
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, docs []leavers.Record) (int64, error) {
				stored = docs
				return int64(len(docs)), nil
			})

		csv := "Department,Month,Leavers\nOps,jan,1e20\nHR,feb,2\n"
		res, err := svc.Import(context.Background(), "leavers.csv", strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Equal(t, int64(2), res.Inserted)

		require.Len(t, stored, 2)
		assert.Equal(t, 0, stored[0].Leavers)
		assert.Equal(t, 2, stored[1].Leavers)
		assert.Equal(t, 2026, stored[1].Year)
	})

	t.Run("replace failure", func(t *testing.T) {
		svc, repo := setupLeaversTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mongo down"))

		_, err := svc.Import(context.Background(), "leavers.csv", strings.NewReader("Department,Month\nOps,Jan\n"))
		assert.ErrorIs(t, err, importerrors.ErrReplaceFailed)
	})
}

func TestLeaversService_Summary(t *testing.T) {
	t.Run("voluntary filter reaches every query", func(t *testing.T) {
		svc, repo := setupLeaversTest(t)
		f := bson.M{"voluntary": true}

		repo.EXPECT().Totals(gomock.Any(), f).Return(leavers.Totals{Count: 2, Leavers: 8, AttritionRateSum: 5, Voluntary: 8}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, "reason", "leavers", aggregate.ByTotalDesc).
			Return([]aggregate.CategoryStat{{Name: "Compensation", Count: 2, Total: 6}, {Name: "Relocation", Count: 1, Total: 2}}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, "department", "leavers", aggregate.ByTotalDesc).
			Return([]aggregate.CategoryStat{}, nil)
		repo.EXPECT().Monthly(gomock.Any(), f, "leavers").Return([]aggregate.MonthlyStat{}, nil)
		repo.EXPECT().Histogram(gomock.Any(), f, "tenureAtExit", aggregate.TenureBuckets).
			Return([]aggregate.BucketCount{}, nil)

		got, err := svc.Summary(context.Background(), url.Values{"type": {"Voluntary"}})
		assert.NoError(t, err)
		assert.Equal(t, int64(8), got.KPIs.TotalLeavers)
		assert.Equal(t, 100.0, got.KPIs.VoluntaryPercent)
		require.Len(t, got.ByReason, 2)
		assert.Equal(t, 75.0, got.ByReason[0].Percent)
	})

	t.Run("unknown type is rejected before querying", func(t *testing.T) {
		svc, _ := setupLeaversTest(t)

		_, err := svc.Summary(context.Background(), url.Values{"type": {"Fired"}})
		assert.ErrorIs(t, err, filtererrors.ErrInvalidValue)
	})
}
