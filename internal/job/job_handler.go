package job

import (
	"net/http"

	"go-hr-analytics/internal/bootstrap"
	"go-hr-analytics/internal/middleware"
	"go-hr-analytics/internal/shared/apperror"
	"go-hr-analytics/internal/shared/contextutil"
	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResumeField is the multipart field carrying the candidate's resume.
const ResumeField = "resume"

type Handler struct {
	service Service
	rdb     *redis.Client
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

// NewHandler builds the job handler. rdb may be nil, which turns
// idempotent applies off.
func NewHandler(service Service, rdb *redis.Client, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger(l)
	}
	return &Handler{service: service, rdb: rdb, audit: audit, logger: l.Named("job.handler")}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if apperror.ToHTTP(err).Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("job request failed", zap.Error(err))
	}
	response.FromError(c, err)
}

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobs, nil)
}

func (h *Handler) GetJob(c *gin.Context) {
	j, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	j, err := h.service.CreateJob(ctx, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "JOB_CREATE",
		Message: "job posted",
		ActorID: c.GetString("user_id_validated"),
		Meta:    map[string]any{"job_id": j.ID, "title": j.Title},
	})
	response.Success(c, http.StatusCreated, j, nil)
}

func (h *Handler) UpdateJob(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	j, err := h.service.UpdateJob(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, j, nil)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := h.service.DeleteJob(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "JOB_DELETE",
		Message: "job and its applications deleted",
		ActorID: c.GetString("user_id_validated"),
		Meta: map[string]any{
			"job_id":               res.JobID,
			"applications_deleted": res.ApplicationsDeleted,
			"resumes_missing":      res.ResumesMissing,
		},
	})
	response.Success(c, http.StatusOK, res, nil)
}

// Apply stores the candidate's application. With an Idempotency-Key the
// first successful response is replayed for retries.
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.ReleaseIdempotent(c, h.rdb)
		response.BindError(c, err)
		return
	}

	// file kosong ditangani service (ErrResumeRequired)
	resume, _ := c.FormFile(ResumeField)

	app, err := h.service.Apply(c.Request.Context(), c.Param("id"), req, resume)
	if err != nil {
		middleware.ReleaseIdempotent(c, h.rdb)
		h.writeError(c, err)
		return
	}
	middleware.StoreIdempotent(c, h.rdb, app)
	response.Success(c, http.StatusCreated, app, nil)
}

func (h *Handler) ListJobApplications(c *gin.Context) {
	apps, err := h.service.ListJobApplications(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps, nil)
}

func (h *Handler) ListApplications(c *gin.Context) {
	apps, err := h.service.ListApplications(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps, nil)
}

func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	app, err := h.service.UpdateApplicationStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "APPLICATION_STATUS_UPDATE",
		Message: "application status changed",
		ActorID: c.GetString("user_id_validated"),
		Meta:    map[string]any{"application_id": app.ID, "status": app.Status},
	})
	response.Success(c, http.StatusOK, app, nil)
}

func (h *Handler) DownloadResume(c *gin.Context) {
	path, name, err := h.service.ResumeFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.FileAttachment(path, name)
}
