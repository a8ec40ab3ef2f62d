package training_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/training"
	trainingMock "go-hr-analytics/internal/training/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"
)

func setupTrainingTest(t *testing.T) (training.Service, *trainingMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := trainingMock.NewMockRepository(ctrl)
	clk := clock.Fixed(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	return training.NewService(repo, nil, clk), repo
}

func TestTrainingService_Import(t *testing.T) {
	svc, repo := setupTrainingTest(t)
	repo.EXPECT().ReplaceAll(gomock.Any(), []training.Record{
		{
			Department: "IT", TrainingType: "Technical", Month: "March", Year: 2026,
			TrainingsConducted: 2, TrainingHours: 16, Participants: 8,
		},
	}).Return(int64(1), nil)

	csv := "Department,Training Type,Month,Sessions,Hours,Attendees\n" +
		"IT,technical,mar,2,16,8\n" +
		",Safety,Apr,1,4,3\n"
	res, err := svc.Import(context.Background(), "training.csv", strings.NewReader(csv))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Inserted)
	assert.Equal(t, 2, res.RowsRead)
}

func TestTrainingService_Summary(t *testing.T) {
	t.Run("type filter reaches every aggregation", func(t *testing.T) {
		svc, repo := setupTrainingTest(t)
		f := bson.M{"trainingType": "Compliance"}
		repo.EXPECT().Totals(gomock.Any(), f).
			Return(training.Totals{Count: 2, TrainingsConducted: 3, TrainingHours: 30, ParticipationPercent: 150, Participants: 12}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, "trainingType", "trainingHours", aggregate.ByTotalDesc).
			Return([]aggregate.CategoryStat{{Name: "Compliance", Count: 2, Total: 30}}, nil)
		repo.EXPECT().Categories(gomock.Any(), f, "department", "trainingHours", aggregate.ByTotalDesc).
			Return([]aggregate.CategoryStat{{Name: "IT", Count: 1, Total: 20}, {Name: "HR", Count: 1, Total: 10}}, nil)
		repo.EXPECT().Monthly(gomock.Any(), f, "trainingHours").
			Return([]aggregate.MonthlyStat{{Year: 2026, Month: "January", Total: 30, Count: 2}}, nil)

		sum, err := svc.Summary(context.Background(), url.Values{"type": {"Compliance"}})

		assert.NoError(t, err)
		assert.Equal(t, training.KPIs{
			TotalTrainings:              3,
			TotalHours:                  30,
			TotalParticipants:           12,
			AverageParticipationPercent: 75,
			HoursPerParticipant:         2.5,
		}, sum.KPIs)
		assert.Equal(t, 100.0, sum.ByType[0].Percent)
		assert.Equal(t, 66.67, sum.ByDepartment[0].Percent)
		assert.Len(t, sum.MonthlyTrend, 1)
	})

	t.Run("repository error stops the summary", func(t *testing.T) {
		svc, repo := setupTrainingTest(t)
		repo.EXPECT().Totals(gomock.Any(), bson.M{}).Return(training.Totals{}, errors.New("mongo down"))
		repo.EXPECT().Categories(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Summary(context.Background(), url.Values{})

		assert.EqualError(t, err, "mongo down")
	})
}
