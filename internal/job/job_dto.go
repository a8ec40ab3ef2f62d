package job

import "time"

type CreateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company"`
	Location     string `json:"location" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
	Status       string `json:"status"`
}

// UpdateJobRequest only touches the fields that are sent.
type UpdateJobRequest struct {
	Title        *string `json:"title"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	Type         *string `json:"type"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Salary       *string `json:"salary"`
	Status       *string `json:"status"`
}

type JobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	Status       string    `json:"status"`
	PostedAt     time.Time `json:"postedAt"`
}

type ApplyRequest struct {
	CandidateName string `form:"candidateName" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Phone         string `form:"phone"`
	CoverLetter   string `form:"coverLetter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	CandidateName string    `json:"candidateName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CoverLetter   string    `json:"coverLetter"`
	ResumeName    string    `json:"resumeName"`
	HasResume     bool      `json:"hasResume"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// DeleteJobResult reports what the cascade removed.
type DeleteJobResult struct {
	JobID               string `json:"jobId"`
	ApplicationsDeleted int64  `json:"applicationsDeleted"`
	ResumesRemoved      int    `json:"resumesRemoved"`
	ResumesMissing      int    `json:"resumesMissing"`
}

func mapJob(j Job) JobResponse {
	return JobResponse{
		ID:           j.ID.String(),
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Type:         j.Type,
		Category:     j.Category,
		Description:  j.Description,
		Requirements: j.Requirements,
		Salary:       j.Salary,
		Status:       j.Status,
		PostedAt:     j.PostedAt,
	}
}

func mapApplication(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID.String(),
		JobID:         a.JobID.String(),
		CandidateName: a.CandidateName,
		Email:         a.Email,
		Phone:         a.Phone,
		CoverLetter:   a.CoverLetter,
		ResumeName:    a.ResumeName,
		HasResume:     a.ResumePath != "",
		Status:        a.Status,
		AppliedAt:     a.AppliedAt,
	}
}
