package job_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hr-analytics/internal/job"
	joberrors "go-hr-analytics/internal/job/errors"
	jobMock "go-hr-analytics/internal/job/mock"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupHandlerTest(t *testing.T) (*gin.Engine, *jobMock.MockRepository) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repo := jobMock.NewMockRepository(ctrl)
	svc := job.NewService(repo, storage.NewLocalStore(t.TempDir()), 1<<20, clock.Fixed(now), zap.NewNop())
	h := job.NewHandler(svc, nil, nil, zap.NewNop())

	r := gin.New()
	r.GET("/jobs", h.ListJobs)
	r.POST("/jobs/:id/apply", h.Apply)
	r.DELETE("/jobs/:id", h.DeleteJob)
	r.PATCH("/applications/:id/status", h.UpdateApplicationStatus)
	return r, repo
}

func applyRequest(t *testing.T, jobID string, fields map[string]string, withResume bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withResume {
		fw, err := w.CreateFormFile(job.ResumeField, "cv.pdf")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("%PDF"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/jobs/"+jobID+"/apply", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHandler_Apply(t *testing.T) {
	fields := map[string]string{"candidateName": "Budi", "email": "budi@mail.com"}

	t.Run("created", func(t *testing.T) {
		r, repo := setupHandlerTest(t)
		jobID := uuid.New()
		repo.EXPECT().FindJobByID(gomock.Any(), jobID).Return(&job.Job{ID: jobID, Status: job.JobStatusActive}, nil)
		repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil)

		w, env := serve(r, applyRequest(t, jobID.String(), fields, true))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)

		var app job.ApplicationResponse
		require.NoError(t, json.Unmarshal(env.Data, &app))
		assert.Equal(t, "Applied", app.Status)
		assert.Equal(t, "cv.pdf", app.ResumeName)
	})

	t.Run("missing resume", func(t *testing.T) {
		r, repo := setupHandlerTest(t)
		jobID := uuid.New()
		repo.EXPECT().FindJobByID(gomock.Any(), jobID).Return(&job.Job{ID: jobID, Status: job.JobStatusActive}, nil)

		w, env := serve(r, applyRequest(t, jobID.String(), fields, false))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("missing candidate name", func(t *testing.T) {
		r, _ := setupHandlerTest(t)
		w, env := serve(r, applyRequest(t, uuid.NewString(), map[string]string{"email": "budi@mail.com"}, true))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestHandler_UpdateApplicationStatus(t *testing.T) {
	r, _ := setupHandlerTest(t)
	req := httptest.NewRequest(http.MethodPatch, "/applications/"+uuid.NewString()+"/status", bytes.NewBufferString(`{"status":"Pending"}`))
	req.Header.Set("Content-Type", "application/json")

	w, env := serve(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Ok)
}

func TestHandler_DeleteJob_NotFound(t *testing.T) {
	r, repo := setupHandlerTest(t)
	jobID := uuid.New()
	repo.EXPECT().FindJobByID(gomock.Any(), jobID).Return(nil, joberrors.ErrJobNotFound)

	w, env := serve(r, httptest.NewRequest(http.MethodDelete, "/jobs/"+jobID.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
