package engagement

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "engagement"
	CollectionName = "engagements"
)

// Record holds survey scores for one department and month.
type Record struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Month           string             `bson:"month" json:"month"`
	Year            int                `bson:"year" json:"year"`
	Department      string             `bson:"department" json:"department"`
	Leadership      float64            `bson:"leadership" json:"leadership"`
	Recognition     float64            `bson:"recognition" json:"recognition"`
	Growth          float64            `bson:"growth" json:"growth"`
	WorkLifeBalance float64            `bson:"workLifeBalance" json:"workLifeBalance"`
	EngagementScore float64            `bson:"engagementScore" json:"engagementScore"`
}
