package leavers

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "leavers"
	CollectionName = "leavers"
)

const ReasonOther = "Other"

var Reasons = []string{
	"Better Opportunity",
	"Compensation",
	"Career Growth",
	"Relocation",
	"Personal",
	"Retirement",
	"Termination",
	ReasonOther,
}

type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Department    string             `bson:"department" json:"department"`
	Month         string             `bson:"month" json:"month"`
	Year          int                `bson:"year" json:"year"`
	Leavers       int                `bson:"leavers" json:"leavers"`
	AttritionRate float64            `bson:"attritionRate" json:"attritionRate"`
	Reason        string             `bson:"reason" json:"reason"`
	Voluntary     bool               `bson:"voluntary" json:"voluntary"`
	TenureAtExit  float64            `bson:"tenureAtExit" json:"tenureAtExit"`
}
