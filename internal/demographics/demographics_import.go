package demographics

import (
	"strings"

	"go-hr-analytics/internal/importer"
)

var (
	colEmployeeName = importer.Col("Employee Name", "Name", "EmployeeName")
	colDepartment   = importer.Col("Department", "Dept", "Department Name")
	colDesignation  = importer.Col("Designation", "Title", "Job Title", "Position")
	colYear         = importer.Col("Year")
	colGender       = importer.Col("Gender", "Sex")
	colAge          = importer.Col("Age")
	colTenure       = importer.Col("Tenure", "Tenure Years", "Years of Service")
	colEducation    = importer.Col("Education", "Qualification", "Education Level")
	colProvince     = importer.Col("Province", "State", "Region")
	colCity         = importer.Col("City", "Location")
)

func normalizeGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "m", "male":
		return "Male"
	case "f", "female":
		return "Female"
	}
	return g
}

// newNormalizer builds the row mapper; rows without a year get defaultYear.
func newNormalizer(defaultYear int) importer.NormalizeFunc[Record] {
	return func(r importer.Row) (Record, bool) {
		if !r.Require(colDepartment) {
			return Record{}, false
		}

		rec := Record{
			EmployeeName: r.String(colEmployeeName, ""),
			Department:   r.String(colDepartment, ""),
			Designation:  r.String(colDesignation, ""),
			Year:         r.Int(colYear, defaultYear),
			Gender:       normalizeGender(r.String(colGender, "")),
			Age:          r.Float(colAge, 0),
			Tenure:       r.Float(colTenure, 0),
			Education:    r.String(colEducation, ""),
			Province:     r.String(colProvince, ""),
			City:         r.String(colCity, ""),
		}

		if city, ok := LookupCity(rec.City); ok {
			rec.City = city.Name
			lat, lng := city.Latitude, city.Longitude
			rec.Latitude = &lat
			rec.Longitude = &lng
			if rec.Province == "" {
				rec.Province = city.Province
			}
		}
		return rec, true
	}
}
