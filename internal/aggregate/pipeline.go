package aggregate

import (
	"sort"

	"go-hr-analytics/internal/shared/calendar"

	"go.mongodb.org/mongo-driver/bson"
)

// Order picks how category groups are sorted.
type Order int

const (
	ByCountDesc Order = iota
	ByTotalDesc
	ByAverageDesc
	ByNameAsc
)

// CategoryStat is one group of a group-by-category view.
type CategoryStat struct {
	Name    string  `bson:"_id" json:"name"`
	Count   int64   `bson:"count" json:"count"`
	Total   float64 `bson:"total" json:"total"`
	Average float64 `bson:"average" json:"average"`
	Percent float64 `bson:"percent" json:"percent"`
}

// MonthlyStat is one (month, year) bucket. Months missing from the data
// have no entry.
type MonthlyStat struct {
	Month   string  `bson:"month" json:"month"`
	Year    int     `bson:"year" json:"year"`
	Count   int64   `bson:"count" json:"count"`
	Total   float64 `bson:"total" json:"total"`
	Average float64 `bson:"average" json:"average"`
}

func matchStage(match bson.M) bson.M {
	if match == nil {
		match = bson.M{}
	}
	return bson.M{"$match": match}
}

func valueExpr(valueField string) interface{} {
	if valueField == "" {
		return 0
	}
	return "$" + valueField
}

func sortStage(order Order) bson.M {
	switch order {
	case ByTotalDesc:
		return bson.M{"$sort": bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}}
	case ByAverageDesc:
		return bson.M{"$sort": bson.D{{Key: "average", Value: -1}, {Key: "_id", Value: 1}}}
	case ByNameAsc:
		return bson.M{"$sort": bson.D{{Key: "_id", Value: 1}}}
	default:
		return bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}
	}
}

// CategoryPipeline groups the matched documents by field, counting them and
// summing/averaging valueField when it is set.
func CategoryPipeline(match bson.M, field, valueField string, order Order) []bson.M {
	return []bson.M{
		matchStage(match),
		{"$group": bson.M{
			"_id":     "$" + field,
			"count":   bson.M{"$sum": 1},
			"total":   bson.M{"$sum": valueExpr(valueField)},
			"average": bson.M{"$avg": valueExpr(valueField)},
		}},
		sortStage(order),
	}
}

// MonthlyPipeline groups by (month, year). Ordering happens in Go since
// month names do not sort chronologically.
func MonthlyPipeline(match bson.M, valueField string) []bson.M {
	return []bson.M{
		matchStage(match),
		{"$group": bson.M{
			"_id":     bson.M{"month": "$month", "year": "$year"},
			"count":   bson.M{"$sum": 1},
			"total":   bson.M{"$sum": valueExpr(valueField)},
			"average": bson.M{"$avg": valueExpr(valueField)},
		}},
		{"$project": bson.M{
			"_id":     0,
			"month":   "$_id.month",
			"year":    "$_id.year",
			"count":   1,
			"total":   1,
			"average": 1,
		}},
	}
}

// SumPipeline collapses the matched documents into one with the sum of each
// field under its own name plus "count".
func SumPipeline(match bson.M, fields ...string) []bson.M {
	group := bson.M{"_id": nil, "count": bson.M{"$sum": 1}}
	for _, f := range fields {
		group[f] = bson.M{"$sum": "$" + f}
	}
	return []bson.M{matchStage(match), {"$group": group}}
}

// FinishCategories rounds totals and averages and fills Percent as each
// group's share of the summed count (or total when byTotal).
func FinishCategories(stats []CategoryStat, byTotal bool) []CategoryStat {
	var whole float64
	for _, s := range stats {
		if byTotal {
			whole += s.Total
		} else {
			whole += float64(s.Count)
		}
	}
	for i := range stats {
		part := float64(stats[i].Count)
		if byTotal {
			part = stats[i].Total
		}
		stats[i].Percent = Percent(part, whole)
		stats[i].Total = Round2(stats[i].Total)
		stats[i].Average = Round2(stats[i].Average)
	}
	return stats
}

// SortMonthly orders by year then calendar month; unknown month names go
// last within their year, alphabetically.
func SortMonthly(stats []MonthlyStat) []MonthlyStat {
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		ai, bi := monthRank(a.Month), monthRank(b.Month)
		if ai != bi {
			return ai < bi
		}
		return a.Month < b.Month
	})
	for i := range stats {
		stats[i].Total = Round2(stats[i].Total)
		stats[i].Average = Round2(stats[i].Average)
	}
	return stats
}

func monthRank(m string) int {
	if idx := calendar.MonthIndex(m); idx > 0 {
		return idx
	}
	return 13
}
