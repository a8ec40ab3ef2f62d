package training

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "training"
	CollectionName = "trainings"
)

const TypeOther = "Other"

var TrainingTypes = []string{
	"Technical",
	"Soft Skills",
	"Compliance",
	"Leadership",
	"Safety",
	"Onboarding",
	TypeOther,
}

type Record struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Department           string             `bson:"department" json:"department"`
	TrainingType         string             `bson:"trainingType" json:"trainingType"`
	Month                string             `bson:"month" json:"month"`
	Year                 int                `bson:"year" json:"year"`
	TrainingsConducted   int                `bson:"trainingsConducted" json:"trainingsConducted"`
	TrainingHours        float64            `bson:"trainingHours" json:"trainingHours"`
	ParticipationPercent float64            `bson:"participationPercent" json:"participationPercent"`
	Participants         int                `bson:"participants" json:"participants"`
}
