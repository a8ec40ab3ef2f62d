package joberrors

import (
	"net/http"

	"go-hr-analytics/internal/shared/apperror"
)

var (
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrJobClosed = apperror.New(
		apperror.CodeInvalidState,
		"Job is not accepting applications",
		http.StatusConflict,
	)
	ErrInvalidJobStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Job status must be Active or Closed",
		http.StatusBadRequest,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrInvalidApplicationStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Applied, Reviewed, Shortlisted, Rejected, Hired",
		http.StatusBadRequest,
	)
	ErrResumeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file is required",
		http.StatusBadRequest,
	)
	ErrResumeType = apperror.New(
		apperror.CodeInvalidInput,
		"Resume must be a .pdf, .doc or .docx file",
		http.StatusBadRequest,
	)
	ErrResumeTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Resume file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrResumeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resume file not found",
		http.StatusNotFound,
	)
)
