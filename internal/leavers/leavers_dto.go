package leavers

import (
	"net/url"
	"strings"

	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
	filtererrors "go-hr-analytics/internal/filter/errors"

	"go.mongodb.org/mongo-driver/bson"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("month", "month"),
	filter.Year,
	filter.TextDim("reason", "reason"),
}

var optionFields = []string{"department", "month", "year", "reason"}

// buildFilter adds type=Voluntary|Involuntary on top of the plain dims.
func buildFilter(q url.Values) (bson.M, error) {
	f, err := filter.Build(q, filterDims...)
	if err != nil {
		return nil, err
	}
	switch t := filter.Value(q, "type"); {
	case t == "":
	case strings.EqualFold(t, "Voluntary"):
		f["voluntary"] = true
	case strings.EqualFold(t, "Involuntary"):
		f["voluntary"] = false
	default:
		return nil, filtererrors.ErrInvalidValue
	}
	return f, nil
}

type Totals struct {
	Count            int64   `bson:"count"`
	Leavers          int64   `bson:"leavers"`
	AttritionRateSum float64 `bson:"attritionRate"`
	Voluntary        int64   `bson:"voluntary"`
}

type KPIs struct {
	TotalLeavers         int64   `json:"totalLeavers"`
	AverageAttritionRate float64 `json:"averageAttritionRate"`
	VoluntaryLeavers     int64   `json:"voluntaryLeavers"`
	InvoluntaryLeavers   int64   `json:"involuntaryLeavers"`
	VoluntaryPercent     float64 `json:"voluntaryPercent"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByReason     []aggregate.CategoryStat `json:"byReason"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
	TenureAtExit []aggregate.BucketCount  `json:"tenureAtExit"`
}
