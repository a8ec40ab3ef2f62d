package filter_test

import (
	"net/url"
	"testing"
	"time"

	"go-hr-analytics/internal/filter"
	filtererrors "go-hr-analytics/internal/filter/errors"
	"go-hr-analytics/internal/shared/clock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

var dims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("type", "issueType"),
	filter.Year,
}

func TestBuild(t *testing.T) {
	t.Run("applies present dimensions", func(t *testing.T) {
		q := url.Values{"department": {"Finance"}, "type": {"Payroll"}, "year": {"2024"}}
		f, err := filter.Build(q, dims...)
		assert.NoError(t, err)
		assert.Equal(t, bson.M{"department": "Finance", "issueType": "Payroll", "year": 2024}, f)
	})

	t.Run("All is the same as omitting", func(t *testing.T) {
		withAll, err := filter.Build(url.Values{"department": {"All"}, "year": {"All"}}, dims...)
		assert.NoError(t, err)
		omitted, err := filter.Build(url.Values{}, dims...)
		assert.NoError(t, err)
		assert.Equal(t, omitted, withAll)
		assert.Empty(t, withAll)
	})

	t.Run("unknown params impose nothing", func(t *testing.T) {
		f, err := filter.Build(url.Values{"color": {"red"}}, dims...)
		assert.NoError(t, err)
		assert.Empty(t, f)
	})

	t.Run("non numeric year rejected", func(t *testing.T) {
		_, err := filter.Build(url.Values{"year": {"last"}}, dims...)
		assert.ErrorIs(t, err, filtererrors.ErrInvalidNumber)
	})
}

func TestLastNMonths(t *testing.T) {
	march := clock.Fixed(time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		now  time.Time
		n    int
		want []string
	}{
		{"wraps year boundary", march.Now(), 3, []string{"December", "January", "February"}},
		{"single month", march.Now(), 1, []string{"February"}},
		{"from january", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 2, []string{"November", "December"}},
		{"zero", march.Now(), 0, nil},
		{"fourteen repeats names", march.Now(), 14, []string{
			"January", "February", "March", "April", "May", "June", "July",
			"August", "September", "October", "November", "December", "January", "February",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.LastNMonths(tt.now, tt.n))
		})
	}
}

func TestParseMonths(t *testing.T) {
	n, err := filter.ParseMonths(url.Values{}, 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = filter.ParseMonths(url.Values{"months": {"All"}}, 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = filter.ParseMonths(url.Values{"months": {"3"}}, 6)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = filter.ParseMonths(url.Values{"months": {"0"}}, 6)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = filter.ParseMonths(url.Values{"months": {"-1"}}, 6)
	assert.ErrorIs(t, err, filtererrors.ErrInvalidMonths)
	assert.Contains(t, filtererrors.ErrInvalidMonths.Message, "between 0 and 24")

	_, err = filter.ParseMonths(url.Values{"months": {"abc"}}, 6)
	assert.ErrorIs(t, err, filtererrors.ErrInvalidMonths)

	_, err = filter.ParseMonths(url.Values{"months": {"99"}}, 6)
	assert.ErrorIs(t, err, filtererrors.ErrInvalidMonths)
}

func TestAnd(t *testing.T) {
	base := bson.M{"department": "HR"}
	assert.Equal(t, base, filter.And(base, nil))
	assert.Equal(t, base, filter.And(bson.M{}, base))
	assert.Equal(t,
		bson.M{"$and": bson.A{base, bson.M{"month": bson.M{"$in": []string{"May"}}}}},
		filter.And(base, filter.InMonths("month", []string{"May"})),
	)
}
