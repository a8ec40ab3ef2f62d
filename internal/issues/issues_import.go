package issues

import "go-hr-analytics/internal/importer"

var (
	colIssueType      = importer.Col("Issue Type", "Type", "Category")
	colStatus         = importer.Col("Status")
	colMonth          = importer.Col("Month")
	colYear           = importer.Col("Year")
	colResolutionTime = importer.Col("Avg Resolution Time", "Average Resolution Time", "Resolution Time", "Resolution Days")
	colSLA            = importer.Col("SLA Compliance", "SLA")
	colRaised         = importer.Col("Issues Raised", "Raised")
	colResolved       = importer.Col("Issues Resolved", "Resolved")
	colDepartment     = importer.Col("Department", "Dept")
	colDesignation    = importer.Col("Designation", "Title")
)

// Issue sheets often come from the HR desk itself, so department is optional.
func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colMonth) {
			return Record{}, false
		}
		return Record{
			IssueType:         r.OneOf(colIssueType, IssueTypes, TypeOther),
			Status:            r.OneOf(colStatus, Statuses, StatusOpen),
			Month:             r.Month(colMonth),
			Year:              r.Int(colYear, defaultYear),
			AvgResolutionTime: r.Float(colResolutionTime, 0),
			SLACompliance:     r.Float(colSLA, 0),
			IssuesRaised:      r.Int(colRaised, 0),
			IssuesResolved:    r.Int(colResolved, 0),
			Department:        r.String(colDepartment, DefaultDepartment),
			Designation:       r.String(colDesignation, ""),
		}, true
	}
}
