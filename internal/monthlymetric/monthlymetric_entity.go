// Package monthlymetric serves the single-value monthly series
// (absenteeism, performance, headcount). Each kind has its own collection,
// routes and cache key but shares the code below.
package monthlymetric

import (
	"go-hr-analytics/internal/importer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind describes one monthly series.
type Kind struct {
	Domain     string
	Collection string
	ValueCol   importer.Column
	// Summed series report the per-month sum instead of the mean.
	Summed bool
	// Windowed series accept months=N.
	Windowed bool
}

var (
	Absenteeism = Kind{
		Domain:     "absenteeism",
		Collection: "absenteeism",
		ValueCol:   importer.Col("Absenteeism Rate", "Absenteeism", "Absence Rate", "Value"),
		Windowed:   true,
	}
	Performance = Kind{
		Domain:     "performance",
		Collection: "performance",
		ValueCol:   importer.Col("Performance Score", "Performance", "Score", "Rating", "Value"),
	}
	Headcount = Kind{
		Domain:     "headcount",
		Collection: "headcount",
		ValueCol:   importer.Col("Headcount", "Head Count", "Employees", "Value"),
		Summed:     true,
		Windowed:   true,
	}
)

var Kinds = []Kind{Absenteeism, Performance, Headcount}

type Record struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Month      string             `bson:"month" json:"month"`
	Year       int                `bson:"year" json:"year"`
	Department string             `bson:"department" json:"department"`
	Value      float64            `bson:"value" json:"value"`
}
