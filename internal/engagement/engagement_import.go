package engagement

import "go-hr-analytics/internal/importer"

var (
	colMonth           = importer.Col("Month")
	colYear            = importer.Col("Year")
	colDepartment      = importer.Col("Department", "Dept")
	colLeadership      = importer.Col("Leadership", "Leadership Score")
	colRecognition     = importer.Col("Recognition", "Recognition Score")
	colGrowth          = importer.Col("Growth", "Career Growth", "Growth Score")
	colWorkLifeBalance = importer.Col("Work Life Balance", "WLB", "Work-Life Balance Score")
	colScore           = importer.Col("Engagement Score", "Engagement", "Score")
)

func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth) {
			return Record{}, false
		}
		return Record{
			Month:           r.Month(colMonth),
			Year:            r.Int(colYear, defaultYear),
			Department:      r.String(colDepartment, ""),
			Leadership:      r.Float(colLeadership, 0),
			Recognition:     r.Float(colRecognition, 0),
			Growth:          r.Float(colGrowth, 0),
			WorkLifeBalance: r.Float(colWorkLifeBalance, 0),
			EngagementScore: r.Float(colScore, 0),
		}, true
	}
}
