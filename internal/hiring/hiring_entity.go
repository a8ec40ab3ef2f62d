package hiring

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "hiring"
	CollectionName = "hirings"
)

// StageCounts are additive across records.
type StageCounts struct {
	Applications int `bson:"applications" json:"applications"`
	Shortlisted  int `bson:"shortlisted" json:"shortlisted"`
	Interviewed  int `bson:"interviewed" json:"interviewed"`
	Offers       int `bson:"offers" json:"offers"`
	Hired        int `bson:"hired" json:"hired"`
}

type Record struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Department          string             `bson:"department" json:"department"`
	Month               string             `bson:"month" json:"month"`
	Year                int                `bson:"year" json:"year"`
	StageCounts         StageCounts        `bson:"stageCounts" json:"stageCounts"`
	TimeToHire          float64            `bson:"timeToHire" json:"timeToHire"`
	OfferAcceptanceRate float64            `bson:"offerAcceptanceRate" json:"offerAcceptanceRate"`
	Hires               int                `bson:"hires" json:"hires"`
}
