package engagement

import (
	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("month", "month"),
	filter.Year,
}

var optionFields = []string{"department", "month", "year"}

var sumFields = []string{"engagementScore", "leadership", "recognition", "growth", "workLifeBalance"}

type Totals struct {
	Count           int64   `bson:"count"`
	EngagementScore float64 `bson:"engagementScore"`
	Leadership      float64 `bson:"leadership"`
	Recognition     float64 `bson:"recognition"`
	Growth          float64 `bson:"growth"`
	WorkLifeBalance float64 `bson:"workLifeBalance"`
}

type KPIs struct {
	AverageEngagement      float64 `json:"averageEngagement"`
	AverageLeadership      float64 `json:"averageLeadership"`
	AverageRecognition     float64 `json:"averageRecognition"`
	AverageGrowth          float64 `json:"averageGrowth"`
	AverageWorkLifeBalance float64 `json:"averageWorkLifeBalance"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
}
