package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusActive = "Active"
	JobStatusClosed = "Closed"
)

// Application statuses, in workflow order. Rejected and Hired are both
// terminal.
const (
	StatusApplied     = "Applied"
	StatusReviewed    = "Reviewed"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
	StatusHired       = "Hired"
)

var ApplicationStatuses = []string{StatusApplied, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired}

func ValidApplicationStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func ValidJobStatus(s string) bool {
	return s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Company      string    `gorm:"type:varchar(255)"`
	Location     string    `gorm:"type:varchar(255);index"`
	Type         string    `gorm:"type:varchar(50);index"`
	Category     string    `gorm:"type:varchar(100);index"`
	Description  string    `gorm:"type:text"`
	Requirements string    `gorm:"type:text"`
	Salary       string    `gorm:"type:varchar(100)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Active';index"`
	PostedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateName string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(50)"`
	CoverLetter   string    `gorm:"type:text"`
	// ResumePath is relative to the upload root
	ResumePath string `gorm:"type:varchar(500)"`
	ResumeName string `gorm:"type:varchar(255)"`
	Status     string `gorm:"type:varchar(20);not null;default:'Applied';index"`
	AppliedAt  time.Time
	UpdatedAt  time.Time
}
