package hiring

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

// Funnel keys are capitalised; the dashboard labels its chart with them.
type Funnel struct {
	Applications int64 `bson:"applications" json:"Applications"`
	Shortlisted  int64 `bson:"shortlisted" json:"Shortlisted"`
	Interviewed  int64 `bson:"interviewed" json:"Interviewed"`
	Offers       int64 `bson:"offers" json:"Offers"`
	Hired        int64 `bson:"hired" json:"Hired"`
}

type Totals struct {
	Funnel                 `bson:",inline"`
	Count                  int64   `bson:"count"`
	Hires                  int64   `bson:"hires"`
	TimeToHireSum          float64 `bson:"timeToHire"`
	OfferAcceptanceRateSum float64 `bson:"offerAcceptanceRate"`
}

type KPIs struct {
	TotalHires                 int64   `json:"totalHires"`
	AverageTimeToHire          float64 `json:"averageTimeToHire"`
	AverageOfferAcceptanceRate float64 `json:"averageOfferAcceptanceRate"`
	ApplicationToHirePercent   float64 `json:"applicationToHirePercent"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	Funnel       Funnel                   `json:"funnel"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
}
