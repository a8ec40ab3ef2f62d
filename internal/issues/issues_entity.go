package issues

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Domain         = "issues"
	CollectionName = "issues"
)

const (
	TypeOther         = "Other"
	StatusOpen        = "Open"
	StatusClosed      = "Closed"
	DefaultDepartment = "HR Operations"
)

var (
	IssueTypes = []string{
		"Grievance",
		"Harassment",
		"Payroll",
		"Leave",
		"Workplace Safety",
		"Policy Violation",
		TypeOther,
	}
	Statuses = []string{StatusOpen, StatusClosed}
)

type Record struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueType         string             `bson:"issueType" json:"issueType"`
	Status            string             `bson:"status" json:"status"`
	Month             string             `bson:"month" json:"month"`
	Year              int                `bson:"year" json:"year"`
	AvgResolutionTime float64            `bson:"avgResolutionTime" json:"avgResolutionTime"`
	SLACompliance     float64            `bson:"slaCompliance" json:"slaCompliance"`
	IssuesRaised      int                `bson:"issuesRaised" json:"issuesRaised"`
	IssuesResolved    int                `bson:"issuesResolved" json:"issuesResolved"`
	Department        string             `bson:"department" json:"department"`
	Designation       string             `bson:"designation,omitempty" json:"designation,omitempty"`
}
