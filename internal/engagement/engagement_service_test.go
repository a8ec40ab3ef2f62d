package engagement_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/engagement"
	engagementMock "go-hr-analytics/internal/engagement/mock"
	filtererrors "go-hr-analytics/internal/filter/errors"
	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/shared/clock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"
)

var fixedClock = clock.Fixed(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))

func setupEngagementTest(t *testing.T) (engagement.Service, *engagementMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := engagementMock.NewMockRepository(ctrl)
	return engagement.NewService(repo, nil, fixedClock), repo
}

func TestEngagementService_Import(t *testing.T) {
	t.Run("rows without department leave the collection untouched", func(t *testing.T) {
		svc, repo := setupEngagementTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Import(context.Background(), "e.csv", strings.NewReader("Month,Engagement Score\nJan,4.2\n"))
		assert.ErrorIs(t, err, importerrors.ErrNoValidRows)
	})

	t.Run("store failure is reported", func(t *testing.T) {
		svc, repo := setupEngagementTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mongo down"))

		_, err := svc.Import(context.Background(), "e.csv", strings.NewReader("Department,Month\nIT,Jan\n"))
		assert.ErrorIs(t, err, importerrors.ErrReplaceFailed)
	})

	t.Run("scores parsed", func(t *testing.T) {
		svc, repo := setupEngagementTest(t)
		repo.EXPECT().ReplaceAll(gomock.Any(), []engagement.Record{{
			Month: "January", Year: 2025, Department: "IT",
			Leadership: 4, Recognition: 3.5, Growth: 3, WorkLifeBalance: 4.5, EngagementScore: 3.75,
		}}).Return(int64(1), nil)

		csv := "Department,Month,Year,Leadership,Recognition,Growth,WLB,Engagement Score\n" +
			"IT,jan,2025,4,3.5,3,4.5,3.75\n"
		res, err := svc.Import(context.Background(), "e.csv", strings.NewReader(csv))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.Inserted)
	})
}

func TestEngagementService_Summary(t *testing.T) {
	t.Run("kpis and department ranking", func(t *testing.T) {
		svc, repo := setupEngagementTest(t)
		repo.EXPECT().Totals(gomock.Any(), bson.M{}).
			Return(engagement.Totals{Count: 3, EngagementScore: 10, Leadership: 12, Recognition: 9, Growth: 6, WorkLifeBalance: 13.5}, nil)
		repo.EXPECT().Categories(gomock.Any(), bson.M{}, "department", "engagementScore", aggregate.ByAverageDesc).
			Return([]aggregate.CategoryStat{
				{Name: "IT", Count: 2, Average: 3.666},
				{Name: "HR", Count: 1, Average: 2.5},
			}, nil)
		repo.EXPECT().Monthly(gomock.Any(), bson.M{}, "engagementScore").Return([]aggregate.MonthlyStat{}, nil)

		got, err := svc.Summary(context.Background(), url.Values{"department": {"All"}})
		assert.NoError(t, err)
		assert.Equal(t, engagement.KPIs{
			AverageEngagement: 3.33, AverageLeadership: 4, AverageRecognition: 3,
			AverageGrowth: 2, AverageWorkLifeBalance: 4.5,
		}, got.KPIs)
		assert.Equal(t, 3.67, got.ByDepartment[0].Average)
	})

	t.Run("bad year never queries", func(t *testing.T) {
		svc, _ := setupEngagementTest(t)

		_, err := svc.Summary(context.Background(), url.Values{"year": {"twenty"}})
		assert.ErrorIs(t, err, filtererrors.ErrInvalidNumber)
	})
}
