package job

import (
	"context"
	"errors"

	joberrors "go-hr-analytics/internal/job/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter is a column -> value equality filter.
type Filter map[string]any

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	CreateJob(ctx context.Context, j *Job) error
	UpdateJob(ctx context.Context, j *Job) error
	FindJobs(ctx context.Context, f Filter) ([]Job, error)
	FindJobByID(ctx context.Context, id uuid.UUID) (*Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
	CreateApplication(ctx context.Context, a *Application) error
	UpdateApplication(ctx context.Context, a *Application) error
	FindApplications(ctx context.Context, f Filter) ([]Application, error)
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*Application, error)
	DeleteApplicationsByJob(ctx context.Context, jobID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) where(ctx context.Context, f Filter) *gorm.DB {
	q := r.db.WithContext(ctx)
	if len(f) > 0 {
		q = q.Where(map[string]any(f))
	}
	return q
}

func (r *repository) CreateJob(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) UpdateJob(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) FindJobs(ctx context.Context, f Filter) ([]Job, error) {
	var jobs []Job
	err := r.where(ctx, f).Order("posted_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindJobByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, joberrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *repository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return joberrors.ErrJobNotFound
	}
	return nil
}

func (r *repository) CreateApplication(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) UpdateApplication(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindApplications(ctx context.Context, f Filter) ([]Application, error) {
	var apps []Application
	err := r.where(ctx, f).Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *repository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, joberrors.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) DeleteApplicationsByJob(ctx context.Context, jobID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Application{}, "job_id = ?", jobID)
	return res.RowsAffected, res.Error
}
