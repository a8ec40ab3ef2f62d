package demographics

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "demographics"
	CollectionName = "demographics"
)

type Record struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeName string             `bson:"employeeName,omitempty" json:"employeeName,omitempty"`
	Department   string             `bson:"department" json:"department"`
	Designation  string             `bson:"designation" json:"designation"`
	Year         int                `bson:"year" json:"year"`
	Gender       string             `bson:"gender" json:"gender"`
	Age          float64            `bson:"age" json:"age"`
	Tenure       float64            `bson:"tenure" json:"tenure"`
	Education    string             `bson:"education" json:"education"`
	Province     string             `bson:"province" json:"province"`
	City         string             `bson:"city" json:"city"`
	Latitude     *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
}
