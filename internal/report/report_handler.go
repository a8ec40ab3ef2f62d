// Package report wires one reporting domain onto HTTP: upload (replace
// import), raw list, summary and filter options.
package report

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go-hr-analytics/internal/bootstrap"
	"go-hr-analytics/internal/importer"
	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/shared/apperror"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/contextutil"
	"go-hr-analytics/internal/shared/response"
	"go-hr-analytics/internal/shared/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileField is the multipart field every upload endpoint reads.
const FileField = "file"

// Service is implemented by every reporting domain. T is the stored record,
// S the summary object.
type Service[T any, S any] interface {
	Import(ctx context.Context, filename string, r io.Reader) (importer.Result, error)
	List(ctx context.Context, q url.Values) ([]T, error)
	Summary(ctx context.Context, q url.Values) (S, error)
	Options(ctx context.Context) (cache.Options, error)
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type UploadResponse struct {
	Message string `json:"message"`
	importer.Result
}

type Handler[T any, S any] struct {
	domain  string
	service Service[T, S]
	upload  UploadConfig
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

func NewHandler[T any, S any](
	domain string,
	service Service[T, S],
	uploadCfg UploadConfig,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) *Handler[T, S] {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger(l)
	}
	return &Handler[T, S]{
		domain:  domain,
		service: service,
		upload:  uploadCfg,
		audit:   audit,
		logger:  l.Named(domain + ".handler"),
	}
}

func (h *Handler[T, S]) Domain() string {
	return h.domain
}

func (h *Handler[T, S]) writeError(c *gin.Context, err error) {
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	if apperror.ToHTTP(err).Status >= http.StatusInternalServerError {
		log.Error("report request failed", zap.String("domain", h.domain), zap.Error(err))
	} else {
		log.Info("report request rejected", zap.String("domain", h.domain), zap.Error(err))
	}
	response.FromError(c, err)
}

// Upload replaces the domain's collection with the uploaded spreadsheet.
// The staged temp file is removed on every path.
func (h *Handler[T, S]) Upload(c *gin.Context) {
	tmp, err := upload.Receive(c, FileField, h.upload.Dir, h.upload.MaxBytes)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrMissingFile):
			h.writeError(c, importerrors.ErrMissingFile)
		case errors.Is(err, upload.ErrTooLarge):
			h.writeError(c, importerrors.ErrFileTooLarge)
		default:
			h.writeError(c, importerrors.ErrReplaceFailed.WithErr(err))
		}
		return
	}
	defer tmp.Remove()

	f, err := tmp.Open()
	if err != nil {
		h.writeError(c, importerrors.ErrReplaceFailed.WithErr(err))
		return
	}
	defer f.Close()

	ctx := c.Request.Context()
	res, err := h.service.Import(ctx, tmp.OriginalName, f)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "REPORT_IMPORT",
		Message: "collection replaced by upload",
		ActorID: c.GetString("user_id_validated"),
		Meta: map[string]any{
			"domain":       h.domain,
			"file":         tmp.OriginalName,
			"rows_read":    res.RowsRead,
			"rows_dropped": res.RowsDropped,
			"inserted":     res.Inserted,
		},
	})

	response.Success(c, http.StatusOK, UploadResponse{Message: res.Message(), Result: res}, nil)
}

func (h *Handler[T, S]) GetAll(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if records == nil {
		records = []T{}
	}
	response.Success(c, http.StatusOK, records, nil)
}

func (h *Handler[T, S]) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler[T, S]) GetOptions(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if opts == nil {
		opts = cache.Options{}
	}
	response.Success(c, http.StatusOK, opts, nil)
}
