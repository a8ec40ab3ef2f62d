package training

import "go-hr-analytics/internal/importer"

var (
	colDepartment    = importer.Col("Department", "Dept")
	colType          = importer.Col("Training Type", "Type", "Category")
	colMonth         = importer.Col("Month")
	colYear          = importer.Col("Year")
	colConducted     = importer.Col("Trainings Conducted", "Trainings", "Sessions")
	colHours         = importer.Col("Training Hours", "Hours")
	colParticipation = importer.Col("Participation Percent", "Participation Rate", "Participation")
	colParticipants  = importer.Col("Participants", "Attendees")
)

func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment, colMonth) {
			return Record{}, false
		}
		return Record{
			Department:           r.String(colDepartment, ""),
			TrainingType:         r.OneOf(colType, TrainingTypes, TypeOther),
			Month:                r.Month(colMonth),
			Year:                 r.Int(colYear, defaultYear),
			TrainingsConducted:   r.Int(colConducted, 0),
			TrainingHours:        r.Float(colHours, 0),
			ParticipationPercent: r.Float(colParticipation, 0),
			Participants:         r.Int(colParticipants, 0),
		}, true
	}
}
