package payroll

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

var sumFields = []string{
	"totalPayroll", "basic", "allowances", "overtime", "bonus", "incentives",
	"headcount", "revenue", "leavers", "tax", "employerContribution", "totalCostOfEmployment",
}

// Totals are the column sums over a filtered set.
type Totals struct {
	Count                 int64   `bson:"count"`
	TotalPayroll          float64 `bson:"totalPayroll"`
	Basic                 float64 `bson:"basic"`
	Allowances            float64 `bson:"allowances"`
	Overtime              float64 `bson:"overtime"`
	Bonus                 float64 `bson:"bonus"`
	Incentives            float64 `bson:"incentives"`
	Headcount             float64 `bson:"headcount"`
	Revenue               float64 `bson:"revenue"`
	Leavers               float64 `bson:"leavers"`
	Tax                   float64 `bson:"tax"`
	EmployerContribution  float64 `bson:"employerContribution"`
	TotalCostOfEmployment float64 `bson:"totalCostOfEmployment"`
}

type KPIs struct {
	TotalPayroll              float64 `json:"totalPayroll"`
	TotalHeadcount            int64   `json:"totalHeadcount"`
	AveragePayrollPerEmployee float64 `json:"averagePayrollPerEmployee"`
	TotalRevenue              float64 `json:"totalRevenue"`
	PayrollToRevenuePercent   float64 `json:"payrollToRevenuePercent"`
	TotalCostOfEmployment     float64 `json:"totalCostOfEmployment"`
	TotalTax                  float64 `json:"totalTax"`
	TotalLeavers              int64   `json:"totalLeavers"`
}

type Component struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

type Summary struct {
	KPIs         KPIs                     `json:"kpis"`
	ByDepartment []aggregate.CategoryStat `json:"byDepartment"`
	MonthlyTrend []aggregate.MonthlyStat  `json:"monthlyTrend"`
	Components   []Component              `json:"components"`
}
