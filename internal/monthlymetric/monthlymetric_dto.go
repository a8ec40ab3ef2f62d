package monthlymetric

import (
	"net/url"
	"sort"
	"time"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
	"go-hr-analytics/internal/shared/calendar"

	"go.mongodb.org/mongo-driver/bson"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.Year,
}

var optionFields = []string{"department", "year", "month"}

// buildFilter returns the mongo filter plus the month window (nil when no
// window applies).
func buildFilter(kind Kind, q url.Values, now time.Time, defaultMonths int) (bson.M, []string, error) {
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return nil, nil, err
	}
	if !kind.Windowed {
		return f, nil, nil
	}
	n, err := filter.ParseMonths(q, defaultMonths)
	if err != nil {
		return nil, nil, err
	}
	window := filter.LastNMonths(now, n)
	if len(window) == 0 {
		return f, nil, nil
	}
	return filter.And(f, filter.InMonths("month", window)), window, nil
}

type Totals struct {
	Count int64   `bson:"count"`
	Value float64 `bson:"value"`
}

type KPIs struct {
	Average float64 `json:"average"`
	Total   float64 `json:"total"`
	Latest  float64 `json:"latest"`
}

// TrendPoint is one month of the trend. Year is zero for windowed trends,
// which group by month name.
type TrendPoint struct {
	Month string  `json:"month"`
	Year  int     `json:"year,omitempty"`
	Value float64 `json:"value"`
	Count int64   `json:"count"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	Trend        []TrendPoint             `json:"trend"`
}

// buildTrend turns per-month-name groups into trend points, ordered by
// position in window when one is set, otherwise by calendar month.
func buildTrend(kind Kind, groups []aggregate.CategoryStat, window []string) []TrendPoint {
	rank := func(month string) int {
		if idx := calendar.MonthIndex(month); idx > 0 {
			return idx
		}
		return 13
	}
	if len(window) > 0 {
		pos := make(map[string]int, len(window))
		for i, m := range window {
			// a window over twelve months repeats names; keep the newest slot
			pos[m] = i
		}
		rank = func(month string) int {
			if i, ok := pos[month]; ok {
				return i
			}
			return len(window)
		}
	}

	points := make([]TrendPoint, 0, len(groups))
	for _, g := range groups {
		v := g.Average
		if kind.Summed {
			v = g.Total
		}
		points = append(points, TrendPoint{Month: g.Name, Value: aggregate.Round2(v), Count: g.Count})
	}
	sort.SliceStable(points, func(i, j int) bool {
		ri, rj := rank(points[i].Month), rank(points[j].Month)
		if ri != rj {
			return ri < rj
		}
		return points[i].Month < points[j].Month
	})
	return points
}

// buildYearTrend keeps (month, year) buckets apart; stats arrive sorted by
// year then calendar month.
func buildYearTrend(kind Kind, stats []aggregate.MonthlyStat) []TrendPoint {
	points := make([]TrendPoint, 0, len(stats))
	for _, st := range stats {
		v := st.Average
		if kind.Summed {
			v = st.Total
		}
		points = append(points, TrendPoint{Month: st.Month, Year: st.Year, Value: aggregate.Round2(v), Count: st.Count})
	}
	return points
}

func buildKPIs(t Totals, trend []TrendPoint) KPIs {
	k := KPIs{
		Average: aggregate.Ratio(t.Value, float64(t.Count)),
		Total:   aggregate.Round2(t.Value),
	}
	if len(trend) > 0 {
		k.Latest = trend[len(trend)-1].Value
	}
	return k
}
