package monthlymetric

import "go-hr-analytics/internal/importer"

var (
	colMonth      = importer.Col("Month")
	colYear       = importer.Col("Year")
	colDepartment = importer.Col("Department", "Dept")
)

func newNormalizer(kind Kind, defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth) {
			return Record{}, false
		}
		return Record{
			Month:      r.Month(colMonth),
			Year:       r.Int(colYear, defaultYear),
			Department: r.String(colDepartment, ""),
			Value:      r.Float(kind.ValueCol, 0),
		}, true
	}
}
