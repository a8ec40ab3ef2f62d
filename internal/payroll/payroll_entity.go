package payroll

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "payroll"
	CollectionName = "payrolls"
)

// Record is one department's payroll for one month. Amounts are stored as
// reported in the sheet.
type Record struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Month                 string             `bson:"month" json:"month"`
	Year                  int                `bson:"year" json:"year"`
	Department            string             `bson:"department" json:"department"`
	TotalPayroll          float64            `bson:"totalPayroll" json:"totalPayroll"`
	Basic                 float64            `bson:"basic" json:"basic"`
	Allowances            float64            `bson:"allowances" json:"allowances"`
	Overtime              float64            `bson:"overtime" json:"overtime"`
	Bonus                 float64            `bson:"bonus" json:"bonus"`
	Incentives            float64            `bson:"incentives" json:"incentives"`
	Headcount             int                `bson:"headcount" json:"headcount"`
	Revenue               float64            `bson:"revenue" json:"revenue"`
	Leavers               int                `bson:"leavers" json:"leavers"`
	Tax                   float64            `bson:"tax" json:"tax"`
	EmployerContribution  float64            `bson:"employerContribution" json:"employerContribution"`
	TotalCostOfEmployment float64            `bson:"totalCostOfEmployment" json:"totalCostOfEmployment"`
}
