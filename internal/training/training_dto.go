package training

import (
	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("month", "month"),
	filter.Year,
	filter.TextDim("type", "trainingType"),
}

var optionFields = []string{"department", "month", "year", "trainingType"}

var sumFields = []string{"trainingsConducted", "trainingHours", "participationPercent", "participants"}

type Totals struct {
	Count                int64   `bson:"count"`
	TrainingsConducted   int64   `bson:"trainingsConducted"`
	TrainingHours        float64 `bson:"trainingHours"`
	ParticipationPercent float64 `bson:"participationPercent"`
	Participants         int64   `bson:"participants"`
}

type KPIs struct {
	TotalTrainings              int64   `json:"totalTrainings"`
	TotalHours                  float64 `json:"totalHours"`
	TotalParticipants           int64   `json:"totalParticipants"`
	AverageParticipationPercent float64 `json:"averageParticipationPercent"`
	HoursPerParticipant         float64 `json:"hoursPerParticipant"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByType       []aggregate.CategoryStat `json:"byType"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
}
