package issues_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/issues"
	issuesMock "go-hr-analytics/internal/issues/mock"
	"go-hr-analytics/internal/shared/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"
)

var fixedClock = clock.Fixed(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

func setupIssuesTest(t *testing.T) (issues.Service, *issuesMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := issuesMock.NewMockRepository(ctrl)
	return issues.NewService(repo, nil, fixedClock), repo
}

func expectBreakdowns(repo *issuesMock.MockRepository, f bson.M, byType []aggregate.CategoryStat) {
	repo.EXPECT().Categories(gomock.Any(), f, "issueType", "issuesRaised", aggregate.ByNameAsc).Return(byType, nil)
	repo.EXPECT().Categories(gomock.Any(), f, "status", "issuesRaised", aggregate.ByCountDesc).Return([]aggregate.CategoryStat{}, nil)
	repo.EXPECT().Categories(gomock.Any(), f, "department", "issuesRaised", aggregate.ByTotalDesc).Return([]aggregate.CategoryStat{}, nil)
	repo.EXPECT().Monthly(gomock.Any(), f, "issuesRaised").Return([]aggregate.MonthlyStat{}, nil)
}

func TestIssuesService_Import(t *testing.T) {
	svc, repo := setupIssuesTest(t)

	var stored []issues.Record
	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, docs []issues.Record) (int64, error) {
			stored = docs
			return int64(len(docs)), nil
		})

	csv := "Issue Type,Status,Month,Issues Raised,Issues Resolved,Department\n" +
		"harassment,closed,feb,4,4,\n" +
		"Unknown,,March,2,0,Finance\n" +
		"Payroll,Open,,1,0,Finance\n"

	res, err := svc.Import(context.Background(), "issues.csv", strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Equal(t, 3, res.RowsRead)
	assert.Equal(t, int64(2), res.Inserted)
	assert.Equal(t, 1, res.RowsDropped)

	require.Len(t, stored, 2)
	assert.Equal(t, issues.Record{
		IssueType: "Harassment", Status: issues.StatusClosed, Month: "February", Year: 2026,
		IssuesRaised: 4, IssuesResolved: 4, Department: issues.DefaultDepartment,
	}, stored[0])
	assert.Equal(t, issues.TypeOther, stored[1].IssueType)
	assert.Equal(t, issues.StatusOpen, stored[1].Status)
	assert.Equal(t, "Finance", stored[1].Department)
}

func TestIssuesService_Import_CollidingHeaders(t *testing.T) {
	svc, repo := setupIssuesTest(t)

	repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, docs []issues.Record) (int64, error) {
			require.Len(t, docs, 1)
			assert.Equal(t, "Payroll", docs[0].IssueType)
			assert.Equal(t, "HR", docs[0].Department)
			return 1, nil
		})

	csv := "issueType,IssueType,Department,department,Month\nPayroll,Leave,HR,IT,Jan\n"
	_, err := svc.Import(context.Background(), "issues.csv", strings.NewReader(csv))
	assert.NoError(t, err)
}

func TestIssuesService_Summary(t *testing.T) {
	svc, repo := setupIssuesTest(t)
	f := bson.M{"issueType": "Payroll"}

	repo.EXPECT().Totals(gomock.Any(), f).
		Return(issues.Totals{Count: 4, Raised: 20, Resolved: 15, ResolutionTimeSum: 10, SLASum: 360, Open: 1, Closed: 3}, nil)
	expectBreakdowns(repo, f, []aggregate.CategoryStat{{Name: "Payroll", Count: 4, Total: 20}})

	got, err := svc.Summary(context.Background(), url.Values{"type": {"Payroll"}, "status": {"All"}})
	assert.NoError(t, err)
	assert.Equal(t, issues.KPIs{
		TotalRaised: 20, TotalResolved: 15, ResolutionRatePercent: 75,
		AverageResolutionTime: 2.5, AverageSLACompliance: 90, Open: 1, Closed: 3,
	}, got.KPIs)
	require.Len(t, got.ByType, 1)
	assert.Equal(t, "Payroll", got.ByType[0].Name)
}

func TestIssuesService_SummaryEmpty(t *testing.T) {
	svc, repo := setupIssuesTest(t)
	repo.EXPECT().Totals(gomock.Any(), bson.M{}).Return(issues.Totals{}, nil)
	expectBreakdowns(repo, bson.M{}, []aggregate.CategoryStat{})

	got, err := svc.Summary(context.Background(), url.Values{})
	assert.NoError(t, err)
	assert.Equal(t, issues.KPIs{}, got.KPIs)
	assert.NotNil(t, got.ByType)
}
