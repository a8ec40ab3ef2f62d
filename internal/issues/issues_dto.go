package issues

import (
	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("designation", "designation"),
	filter.TextDim("month", "month"),
	filter.Year,
	filter.TextDim("type", "issueType"),
	filter.TextDim("status", "status"),
}

var optionFields = []string{"department", "designation", "month", "year", "issueType", "status"}

type Totals struct {
	Count             int64   `bson:"count"`
	Raised            int64   `bson:"raised"`
	Resolved          int64   `bson:"resolved"`
	ResolutionTimeSum float64 `bson:"resolutionTime"`
	SLASum            float64 `bson:"sla"`
	Open              int64   `bson:"open"`
	Closed            int64   `bson:"closed"`
}

type KPIs struct {
	TotalRaised           int64   `json:"totalRaised"`
	TotalResolved         int64   `json:"totalResolved"`
	ResolutionRatePercent float64 `json:"resolutionRatePercent"`
	AverageResolutionTime float64 `json:"averageResolutionTime"`
	AverageSLACompliance  float64 `json:"averageSlaCompliance"`
	Open                  int64   `json:"open"`
	Closed                int64   `json:"closed"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByType       []aggregate.CategoryStat `json:"byType"`
	ByStatus     []aggregate.CategoryStat `json:"byStatus"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
}
