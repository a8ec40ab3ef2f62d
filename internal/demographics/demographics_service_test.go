package demographics_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/demographics"
	demoMock "go-hr-analytics/internal/demographics/mock"
	filtererrors "go-hr-analytics/internal/filter/errors"
	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"
)

var fixedClock = clock.Fixed(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

func setupServiceTest(t *testing.T) (demographics.Service, *demoMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := demoMock.NewMockRepository(ctrl)
	return demographics.NewService(repo, nil, fixedClock), repo
}

func TestService_Import(t *testing.T) {
	t.Run("row missing department is dropped", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		csv := "Department,Gender,Age,City\n" +
			"Finance,F,29,karachi\n" +
			",M,40,Lahore\n" +
			"IT,male,51,Atlantis\n"

		var stored []demographics.Record
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, docs []demographics.Record) (int64, error) {
				stored = docs
				return int64(len(docs)), nil
			})

		res, err := svc.Import(context.Background(), "demo.csv", strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Equal(t, 3, res.RowsRead)
		assert.Equal(t, 1, res.RowsDropped)
		assert.Equal(t, int64(2), res.Inserted)

		require.Len(t, stored, 2)
		assert.Equal(t, "Karachi", stored[0].City)
		assert.Equal(t, "Sindh", stored[0].Province)
		assert.Equal(t, "Female", stored[0].Gender)
		assert.NotNil(t, stored[0].Latitude)
		assert.Equal(t, 2026, stored[0].Year)

		assert.Equal(t, "Atlantis", stored[1].City)
		assert.Nil(t, stored[1].Latitude)
		assert.Equal(t, "", stored[1].Province)
	})

	t.Run("each upload replaces the whole set", func(t *testing.T) {
		svc, repo := setupServiceTest(t)

		gomock.InOrder(
			repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(3)).Return(int64(3), nil),
			repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Len(2)).
				DoAndReturn(func(_ context.Context, docs []demographics.Record) (int64, error) {
					assert.Equal(t, "D", docs[0].Department)
					assert.Equal(t, "E", docs[1].Department)
					return int64(len(docs)), nil
				}),
		)

		_, err := svc.Import(context.Background(), "a.csv", strings.NewReader("Department\nA\nB\nC\n"))
		assert.NoError(t, err)
		res, err := svc.Import(context.Background(), "b.csv", strings.NewReader("Department\nD\nE\n"))
		assert.NoError(t, err)
		assert.Equal(t, int64(2), res.Inserted)
	})

	t.Run("no valid rows never reaches the repository", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Import(context.Background(), "x.csv", strings.NewReader("Department,Age\n,30\n"))
		assert.ErrorIs(t, err, importerrors.ErrNoValidRows)
	})

	t.Run("replace failure surfaces as import failure", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("write failed"))

		_, err := svc.Import(context.Background(), "x.csv", strings.NewReader("Department\nHR\n"))
		assert.ErrorIs(t, err, importerrors.ErrReplaceFailed)
	})
}

func TestService_List_AllSentinel(t *testing.T) {
	svc, repo := setupServiceTest(t)
	records := []demographics.Record{{Department: "IT", Year: 2026}}

	repo.EXPECT().Find(gomock.Any(), bson.M{}).Return(records, nil).Times(2)
	repo.EXPECT().Find(gomock.Any(), bson.M{"year": 2026}).Return(records, nil)

	omitted, err := svc.List(context.Background(), url.Values{})
	assert.NoError(t, err)
	withAll, err := svc.List(context.Background(), url.Values{"department": {"All"}, "year": {"All"}, "city": {"All"}})
	assert.NoError(t, err)
	assert.Equal(t, omitted, withAll)

	filtered, err := svc.List(context.Background(), url.Values{"year": {"2026"}})
	assert.NoError(t, err)
	assert.Equal(t, records, filtered)

	_, err = svc.List(context.Background(), url.Values{"year": {"twenty"}})
	assert.ErrorIs(t, err, filtererrors.ErrInvalidNumber)
}

func TestService_Summary(t *testing.T) {
	t.Run("assembles every section", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		f := bson.M{"department": "HR"}
		ages := []aggregate.BucketCount{
			{Label: "<25", Count: 1},
			{Label: "25-34", Count: 2},
			{Label: "35-44", Count: 1},
			{Label: "45-54", Count: 0},
			{Label: "55+", Count: 1},
		}

		repo.EXPECT().KPIs(gomock.Any(), f).Return(demographics.KPIs{TotalEmployees: 5}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, "gender", "", aggregate.ByCountDesc).
			Return([]aggregate.CategoryStat{{Name: "Female", Count: 3}, {Name: "Male", Count: 1}}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, gomock.Any(), "", aggregate.ByCountDesc).
			Return([]aggregate.CategoryStat{}, nil).Times(3)
		repo.EXPECT().Histogram(gomock.Any(), f, "age", aggregate.AgeBuckets).Return(ages, nil)
		repo.EXPECT().Histogram(gomock.Any(), f, "tenure", aggregate.TenureBuckets).Return([]aggregate.BucketCount{}, nil)

		sum, err := svc.Summary(context.Background(), url.Values{"department": {"HR"}})
		assert.NoError(t, err)
		assert.Equal(t, int64(5), sum.KPIs.TotalEmployees)
		assert.Equal(t, ages, sum.AgeBuckets)
		require.Len(t, sum.Gender, 2)
		assert.Equal(t, 75.0, sum.Gender[0].Percent)
	})

	t.Run("repository error stops the summary", func(t *testing.T) {
		svc, repo := setupServiceTest(t)
		repo.EXPECT().KPIs(gomock.Any(), bson.M{}).Return(demographics.KPIs{}, errors.New("aggregate failed"))

		_, err := svc.Summary(context.Background(), url.Values{})
		assert.Error(t, err)
	})
}

func TestService_Map(t *testing.T) {
	svc, repo := setupServiceTest(t)
	points := []demographics.CityPoint{{City: "Karachi", Count: 2}}
	repo.EXPECT().CityMap(gomock.Any(), bson.M{"gender": "Female"}).Return(points, nil)

	got, err := svc.Map(context.Background(), url.Values{"gender": {"Female"}})
	assert.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestService_Options(t *testing.T) {
	svc, repo := setupServiceTest(t)
	repo.EXPECT().Options(gomock.Any()).Return(cache.Options{"department": {"HR"}}, nil)

	opts, err := svc.Options(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"HR"}, opts["department"])
}

func TestLookupCity(t *testing.T) {
	c, ok := demographics.LookupCity("  rahim   yar KHAN ")
	assert.True(t, ok)
	assert.Equal(t, "Rahim Yar Khan", c.Name)
	assert.Equal(t, "Punjab", c.Province)

	_, ok = demographics.LookupCity("Springfield")
	assert.False(t, ok)
}
