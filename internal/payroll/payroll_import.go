package payroll

import "go-hr-analytics/internal/importer"

var (
	colMonth                 = importer.Col("Month", "Pay Month", "Period")
	colYear                  = importer.Col("Year")
	colDepartment            = importer.Col("Department", "Dept")
	colTotalPayroll          = importer.Col("Total Payroll", "Payroll", "Gross Payroll", "Total Salary")
	colBasic                 = importer.Col("Basic", "Basic Salary", "Basic Pay")
	colAllowances            = importer.Col("Allowances", "Allowance")
	colOvertime              = importer.Col("Overtime", "OT")
	colBonus                 = importer.Col("Bonus", "Bonuses")
	colIncentives            = importer.Col("Incentives", "Incentive")
	colHeadcount             = importer.Col("Headcount", "Head Count", "Employees")
	colRevenue               = importer.Col("Revenue", "Sales")
	colLeavers               = importer.Col("Leavers", "Exits")
	colTax                   = importer.Col("Tax", "Income Tax")
	colEmployerContribution  = importer.Col("Employer Contribution", "EOBI", "Employer Contributions")
	colTotalCostOfEmployment = importer.Col("Total Cost of Employment", "Total Cost", "TCOE", "Cost of Employment")
)

// newNormalizer: department, month and a total payroll cell are required.
// A total payroll cell that is present but not numeric becomes 0.
func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth, colTotalPayroll) {
			return Record{}, false
		}
		return Record{
			Month:                 r.Month(colMonth),
			Year:                  r.Int(colYear, defaultYear),
			Department:            r.String(colDepartment, ""),
			TotalPayroll:          r.Float(colTotalPayroll, 0),
			Basic:                 r.Float(colBasic, 0),
			Allowances:            r.Float(colAllowances, 0),
			Overtime:              r.Float(colOvertime, 0),
			Bonus:                 r.Float(colBonus, 0),
			Incentives:            r.Float(colIncentives, 0),
			Headcount:             r.Int(colHeadcount, 0),
			Revenue:               r.Float(colRevenue, 0),
			Leavers:               r.Int(colLeavers, 0),
			Tax:                   r.Float(colTax, 0),
			EmployerContribution:  r.Float(colEmployerContribution, 0),
			TotalCostOfEmployment: r.Float(colTotalCostOfEmployment, 0),
		}, true
	}
}
