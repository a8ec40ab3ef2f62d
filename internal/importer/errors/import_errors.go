package importerrors

import (
	"net/http"

	"go-hr-analytics/internal/shared/apperror"
)

var (
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"no file uploaded, expected form field \"file\"",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"uploaded file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported file format, expected .xlsx, .xls or .csv",
		http.StatusBadRequest,
	)
	ErrUnreadableSpreadsheet = apperror.New(
		apperror.CodeInvalidInput,
		"spreadsheet could not be read",
		http.StatusBadRequest,
	)
	ErrNoValidRows = apperror.New(
		apperror.CodeNoValidRows,
		"no valid rows found in spreadsheet",
		http.StatusBadRequest,
	)
	ErrReplaceFailed = apperror.New(
		apperror.CodeInternalError,
		"import failed",
		http.StatusInternalServerError,
	)
)
