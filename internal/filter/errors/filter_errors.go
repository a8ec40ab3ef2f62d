package filtererrors

import (
	"net/http"

	"go-hr-analytics/internal/shared/apperror"
)

var (
	ErrInvalidNumber = apperror.New(
		apperror.CodeInvalidInput,
		"filter value must be numeric",
		http.StatusBadRequest,
	)
	ErrInvalidValue = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported filter value",
		http.StatusBadRequest,
	)
	ErrInvalidMonths = apperror.New(
		apperror.CodeInvalidInput,
		"months must be a whole number between 0 and 24",
		http.StatusBadRequest,
	)
)
