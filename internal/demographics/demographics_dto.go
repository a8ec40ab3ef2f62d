package demographics

import (
	"go-hr-analytics/internal/aggregate"
	"go-hr-analytics/internal/filter"
)

var filterDims = []filter.Dimension{
	filter.TextDim("department", "department"),
	filter.TextDim("designation", "designation"),
	filter.Year,
	filter.TextDim("gender", "gender"),
	filter.TextDim("education", "education"),
	filter.TextDim("province", "province"),
	filter.TextDim("city", "city"),
}

var optionFields = []string{"department", "designation", "year", "gender", "education", "province", "city"}

type KPIs struct {
	TotalEmployees int64   `json:"totalEmployees"`
	AverageAge     float64 `json:"averageAge"`
	AverageTenure  float64 `json:"averageTenure"`
	FemalePercent  float64 `json:"femalePercent"`
}

type kpiRow struct {
	Count      int64   `bson:"count"`
	AgeSum     float64 `bson:"ageSum"`
	TenureSum  float64 `bson:"tenureSum"`
	FemaleSize int64   `bson:"female"`
}

type Summary struct {
	KPIs          KPIs                     `json:"kpis"`
	Gender        []aggregate.CategoryStat `json:"gender"`
	Departments   []aggregate.CategoryStat `json:"departments"`
	Education     []aggregate.CategoryStat `json:"education"`
	Designations  []aggregate.CategoryStat `json:"designations"`
	AgeBuckets    []aggregate.BucketCount  `json:"ageBuckets"`
	TenureBuckets []aggregate.BucketCount  `json:"tenureBuckets"`
}

// CityPoint is one marker of the headcount map.
type CityPoint struct {
	City      string  `bson:"_id" json:"city"`
	Province  string  `bson:"province" json:"province"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Count     int64   `bson:"count" json:"count"`
}
