package job

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"go-hr-analytics/internal/filter"
	joberrors "go-hr-analytics/internal/job/errors"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/shared/contextutil"
	"go-hr-analytics/internal/shared/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const resumeDir = "resumes"

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// ResumeStore is the slice of storage.LocalStore the service needs.
type ResumeStore interface {
	Save(header *multipart.FileHeader, subdir string) (string, error)
	Remove(rel string) error
	Resolve(rel string) (string, error)
}

type Service interface {
	ListJobs(ctx context.Context, q url.Values) ([]JobResponse, error)
	GetJob(ctx context.Context, id string) (JobResponse, error)
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	UpdateJob(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	DeleteJob(ctx context.Context, id string) (DeleteJobResult, error)
	Apply(ctx context.Context, jobID string, req ApplyRequest, resume *multipart.FileHeader) (ApplicationResponse, error)
	ListApplications(ctx context.Context, q url.Values) ([]ApplicationResponse, error)
	ListJobApplications(ctx context.Context, jobID string) ([]ApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, id string, status string) (ApplicationResponse, error)
	// ResumeFile returns the absolute path and the download name.
	ResumeFile(ctx context.Context, applicationID string) (string, string, error)
}

type service struct {
	repo      Repository
	store     ResumeStore
	maxResume int64
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(repo Repository, store ResumeStore, maxResume int64, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:      repo,
		store:     store,
		maxResume: maxResume,
		clock:     clock.OrSystem(clk),
		logger:    l.Named("job.service"),
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, joberrors.ErrInvalidID
	}
	return parsed, nil
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func jobFilter(q url.Values) (Filter, error) {
	f := Filter{}
	// tanpa status, hanya lowongan aktif yang tampil
	if strings.TrimSpace(q.Get("status")) == "" {
		f["status"] = JobStatusActive
	} else if v := filter.Value(q, "status"); v != "" {
		if !ValidJobStatus(v) {
			return nil, joberrors.ErrInvalidJobStatus
		}
		f["status"] = v
	}
	for _, col := range []string{"category", "type", "location"} {
		if v := filter.Value(q, col); v != "" {
			f[col] = v
		}
	}
	return f, nil
}

func (s *service) ListJobs(ctx context.Context, q url.Values) ([]JobResponse, error) {
	f, err := jobFilter(q)
	if err != nil {
		return nil, err
	}
	jobs, err := s.repo.FindJobs(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, mapJob(j))
	}
	return out, nil
}

func (s *service) findJob(ctx context.Context, id string) (*Job, error) {
	jobID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindJobByID(ctx, jobID)
}

func (s *service) GetJob(ctx context.Context, id string) (JobResponse, error) {
	j, err := s.findJob(ctx, id)
	if err != nil {
		return JobResponse{}, err
	}
	return mapJob(*j), nil
}

func (s *service) CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = JobStatusActive
	}
	if !ValidJobStatus(status) {
		return JobResponse{}, joberrors.ErrInvalidJobStatus
	}

	j := &Job{
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Location:     strings.TrimSpace(req.Location),
		Type:         strings.TrimSpace(req.Type),
		Category:     strings.TrimSpace(req.Category),
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       strings.TrimSpace(req.Salary),
		Status:       status,
		PostedAt:     s.clock.Now(),
	}
	if err := s.repo.CreateJob(ctx, j); err != nil {
		return JobResponse{}, err
	}
	return mapJob(*j), nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (s *service) UpdateJob(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error) {
	j, err := s.findJob(ctx, id)
	if err != nil {
		return JobResponse{}, err
	}
	if req.Status != nil && !ValidJobStatus(strings.TrimSpace(*req.Status)) {
		return JobResponse{}, joberrors.ErrInvalidJobStatus
	}

	assign(&j.Title, req.Title)
	assign(&j.Company, req.Company)
	assign(&j.Location, req.Location)
	assign(&j.Type, req.Type)
	assign(&j.Category, req.Category)
	assign(&j.Salary, req.Salary)
	assign(&j.Status, req.Status)
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}

	if err := s.repo.UpdateJob(ctx, j); err != nil {
		return JobResponse{}, err
	}
	return mapJob(*j), nil
}

// DeleteJob removes the job, its applications and their resume files, in
// that dependency order. The steps are not atomic: a failure part way
// leaves whatever the earlier steps did not reach. Resume files that are
// already gone are logged and skipped.
func (s *service) DeleteJob(ctx context.Context, id string) (DeleteJobResult, error) {
	log := s.log(ctx)

	j, err := s.findJob(ctx, id)
	if err != nil {
		return DeleteJobResult{}, err
	}
	res := DeleteJobResult{JobID: j.ID.String()}
	log = log.With(zap.String("job_id", res.JobID))

	// 1. aplikasi yang terkait
	apps, err := s.repo.FindApplications(ctx, Filter{"job_id": j.ID})
	if err != nil {
		log.Error("delete job: load applications failed", zap.Error(err))
		return res, err
	}
	log.Info("delete job: applications loaded", zap.Int("count", len(apps)))

	// 2. file resume, best effort
	for _, a := range apps {
		if a.ResumePath == "" {
			continue
		}
		err := s.store.Remove(a.ResumePath)
		switch {
		case err == nil:
			res.ResumesRemoved++
		case errors.Is(err, storage.ErrNotFound):
			res.ResumesMissing++
			log.Warn("delete job: resume already missing",
				zap.String("application_id", a.ID.String()),
				zap.String("path", a.ResumePath),
			)
		default:
			log.Error("delete job: remove resume failed",
				zap.String("application_id", a.ID.String()),
				zap.String("path", a.ResumePath),
				zap.Error(err),
			)
		}
	}

	// 3. record aplikasi
	n, err := s.repo.DeleteApplicationsByJob(ctx, j.ID)
	if err != nil {
		log.Error("delete job: delete applications failed", zap.Error(err))
		return res, err
	}
	res.ApplicationsDeleted = n

	// 4. lowongannya sendiri
	if err := s.repo.DeleteJob(ctx, j.ID); err != nil {
		log.Error("delete job: delete job failed", zap.Error(err))
		return res, err
	}

	log.Info("job deleted",
		zap.Int64("applications_deleted", res.ApplicationsDeleted),
		zap.Int("resumes_removed", res.ResumesRemoved),
		zap.Int("resumes_missing", res.ResumesMissing),
	)
	return res, nil
}

func (s *service) Apply(ctx context.Context, jobID string, req ApplyRequest, resume *multipart.FileHeader) (ApplicationResponse, error) {
	j, err := s.findJob(ctx, jobID)
	if err != nil {
		return ApplicationResponse{}, err
	}
	if j.Status != JobStatusActive {
		return ApplicationResponse{}, joberrors.ErrJobClosed
	}
	if resume == nil {
		return ApplicationResponse{}, joberrors.ErrResumeRequired
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(resume.Filename))] {
		return ApplicationResponse{}, joberrors.ErrResumeType
	}
	if s.maxResume > 0 && resume.Size > s.maxResume {
		return ApplicationResponse{}, joberrors.ErrResumeTooLarge
	}

	rel, err := s.store.Save(resume, resumeDir)
	if err != nil {
		return ApplicationResponse{}, err
	}

	now := s.clock.Now()
	a := &Application{
		JobID:         j.ID,
		CandidateName: strings.TrimSpace(req.CandidateName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		CoverLetter:   req.CoverLetter,
		ResumePath:    rel,
		ResumeName:    filepath.Base(resume.Filename),
		Status:        StatusApplied,
		AppliedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateApplication(ctx, a); err != nil {
		// jangan tinggalkan file yatim
		if rmErr := s.store.Remove(rel); rmErr != nil {
			s.log(ctx).Warn("remove resume after failed apply", zap.String("path", rel), zap.Error(rmErr))
		}
		return ApplicationResponse{}, err
	}
	return mapApplication(*a), nil
}

func (s *service) listApplications(ctx context.Context, f Filter) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindApplications(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, mapApplication(a))
	}
	return out, nil
}

func (s *service) ListApplications(ctx context.Context, q url.Values) ([]ApplicationResponse, error) {
	f := Filter{}
	if v := filter.Value(q, "status"); v != "" {
		if !ValidApplicationStatus(v) {
			return nil, joberrors.ErrInvalidApplicationStatus
		}
		f["status"] = v
	}
	if v := filter.Value(q, "jobId"); v != "" {
		id, err := parseID(v)
		if err != nil {
			return nil, err
		}
		f["job_id"] = id
	}
	return s.listApplications(ctx, f)
}

func (s *service) ListJobApplications(ctx context.Context, jobID string) ([]ApplicationResponse, error) {
	j, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.listApplications(ctx, Filter{"job_id": j.ID})
}

func (s *service) findApplication(ctx context.Context, id string) (*Application, error) {
	appID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindApplicationByID(ctx, appID)
}

func (s *service) UpdateApplicationStatus(ctx context.Context, id string, status string) (ApplicationResponse, error) {
	status = strings.TrimSpace(status)
	if !ValidApplicationStatus(status) {
		return ApplicationResponse{}, joberrors.ErrInvalidApplicationStatus
	}
	a, err := s.findApplication(ctx, id)
	if err != nil {
		return ApplicationResponse{}, err
	}
	a.Status = status
	a.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateApplication(ctx, a); err != nil {
		return ApplicationResponse{}, err
	}
	return mapApplication(*a), nil
}

func (s *service) ResumeFile(ctx context.Context, applicationID string) (string, string, error) {
	a, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return "", "", err
	}
	if a.ResumePath == "" {
		return "", "", joberrors.ErrResumeNotFound
	}
	full, err := s.store.Resolve(a.ResumePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrUnsafePath) {
			return "", "", joberrors.ErrResumeNotFound.WithErr(err)
		}
		return "", "", err
	}
	name := a.ResumeName
	if name == "" {
		name = filepath.Base(full)
	}
	return full, name, nil
}
