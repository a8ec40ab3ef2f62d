package hiring

import "go-hr-analytics/internal/importer"

var (
	colDepartment          = importer.Col("Department", "Dept")
	colMonth               = importer.Col("Month")
	colYear                = importer.Col("Year")
	colApplications        = importer.Col("Applications", "Applicants", "Applications Received")
	colShortlisted         = importer.Col("Shortlisted", "Shortlist")
	colInterviewed         = importer.Col("Interviewed", "Interviews")
	colOffers              = importer.Col("Offers", "Offers Made", "Offered")
	colHired               = importer.Col("Hired")
	colTimeToHire          = importer.Col("Time to Hire", "Time to Hire Days", "Days to Hire")
	colOfferAcceptanceRate = importer.Col("Offer Acceptance Rate", "Acceptance Rate", "Offer Acceptance")
	colHires               = importer.Col("Hires", "New Hires")
)

// newNormalizer: hires falls back to the hired stage count when the sheet
// has no separate column for it.
func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth) {
			return Record{}, false
		}
		stages := StageCounts{
			Applications: r.Int(colApplications, 0),
			Shortlisted:  r.Int(colShortlisted, 0),
			Interviewed:  r.Int(colInterviewed, 0),
			Offers:       r.Int(colOffers, 0),
			Hired:        r.Int(colHired, 0),
		}
		return Record{
			Department:          r.String(colDepartment, ""),
			Month:               r.Month(colMonth),
			Year:                r.Int(colYear, defaultYear),
			StageCounts:         stages,
			TimeToHire:          r.Float(colTimeToHire, 0),
			OfferAcceptanceRate: r.Float(colOfferAcceptanceRate, 0),
			Hires:               r.Int(colHires, stages.Hired),
		}, true
	}
}
