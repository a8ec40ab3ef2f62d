package monthlymetric

import (
	"net/url"
	"testing"
	"time"

	"go-hr-analytics/internal/aggregate"
	filtererrors "go-hr-analytics/internal/filter/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

var february = time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC)

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		q          url.Values
		wantFilter bson.M
		wantWindow []string
		wantErr    error
	}{
		{
			name:       "default window wraps into previous year",
			kind:       Absenteeism,
			q:          url.Values{},
			wantFilter: bson.M{"month": bson.M{"$in": []string{"November", "December", "January"}}},
			wantWindow: []string{"November", "December", "January"},
		},
		{
			name: "window combined with department",
			kind: Headcount,
			q:    url.Values{"months": {"1"}, "department": {"IT"}},
			wantFilter: bson.M{"$and": bson.A{
				bson.M{"department": "IT"},
				bson.M{"month": bson.M{"$in": []string{"January"}}},
			}},
			wantWindow: []string{"January"},
		},
		{
			name:       "zero disables the window",
			kind:       Headcount,
			q:          url.Values{"months": {"0"}},
			wantFilter: bson.M{},
		},
		{
			name:       "performance ignores months",
			kind:       Performance,
			q:          url.Values{"months": {"3"}, "year": {"2025"}},
			wantFilter: bson.M{"year": 2025},
		},
		{
			name:    "out of range",
			kind:    Absenteeism,
			q:       url.Values{"months": {"25"}},
			wantErr: filtererrors.ErrInvalidMonths,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, window, err := buildFilter(tt.kind, tt.q, february, 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFilter, f)
			assert.Equal(t, tt.wantWindow, window)
		})
	}
}

func TestBuildTrend(t *testing.T) {
	groups := []aggregate.CategoryStat{
		{Name: "January", Count: 2, Total: 200, Average: 100},
		{Name: "December", Count: 2, Total: 180, Average: 90},
		{Name: "November", Count: 1, Total: 80, Average: 80},
	}

	t.Run("windowed keeps window order", func(t *testing.T) {
		got := buildTrend(Headcount, groups, []string{"November", "December", "January"})
		assert.Equal(t, []TrendPoint{
			{Month: "November", Value: 80, Count: 1},
			{Month: "December", Value: 180, Count: 2},
			{Month: "January", Value: 200, Count: 2},
		}, got)
	})

	t.Run("calendar order uses averages for rate series", func(t *testing.T) {
		got := buildTrend(Performance, append(groups, aggregate.CategoryStat{Name: "Q1", Count: 1, Average: 5}), nil)
		months := make([]string, len(got))
		for i, p := range got {
			months[i] = p.Month
		}
		assert.Equal(t, []string{"January", "November", "December", "Q1"}, months)
		assert.Equal(t, 100.0, got[0].Value)
	})
}

func TestBuildYearTrend(t *testing.T) {
	stats := []aggregate.MonthlyStat{
		{Month: "January", Year: 2024, Count: 2, Total: 20, Average: 10},
		{Month: "January", Year: 2025, Count: 1, Total: 7, Average: 7},
	}

	assert.Equal(t, []TrendPoint{
		{Month: "January", Year: 2024, Value: 20, Count: 2},
		{Month: "January", Year: 2025, Value: 7, Count: 1},
	}, buildYearTrend(Headcount, stats))

	rates := buildYearTrend(Performance, stats)
	assert.Equal(t, 10.0, rates[0].Value)
	assert.Equal(t, 7.0, rates[1].Value)
}
