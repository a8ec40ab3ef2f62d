package leavers

import "go-hr-analytics/internal/importer"

var (
	colDepartment    = importer.Col("Department", "Dept")
	colMonth         = importer.Col("Month")
	colYear          = importer.Col("Year")
	colLeavers       = importer.Col("Leavers", "Leaver Count", "Exits", "Count")
	colAttritionRate = importer.Col("Attrition Rate", "Attrition", "Turnover Rate")
	colReason        = importer.Col("Reason", "Exit Reason", "Reason for Leaving")
	colVoluntary     = importer.Col("Voluntary", "Type", "Exit Type", "Leaver Type")
	colTenureAtExit  = importer.Col("Tenure at Exit", "Tenure", "Years of Service")
)

func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth) {
			return Record{}, false
		}
		return Record{
			Department:    r.String(colDepartment, ""),
			Month:         r.Month(colMonth),
			Year:          r.Int(colYear, defaultYear),
			Leavers:       r.Int(colLeavers, 0),
			AttritionRate: r.Float(colAttritionRate, 0),
			Reason:        r.OneOf(colReason, Reasons, ReasonOther),
			Voluntary:     r.Bool(colVoluntary, true),
			TenureAtExit:  r.Float(colTenureAtExit, 0),
		}, true
	}
}
