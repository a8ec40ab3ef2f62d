package autherrors

import (
	"net/http"

	"go-hr-analytics/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)
	ErrEmailNotVerified = apperror.New(
		apperror.CodeForbidden,
		"Email address has not been verified",
		http.StatusForbidden,
	)
	ErrAlreadyVerified = apperror.New(
		apperror.CodeInvalidState,
		"Email address is already verified",
		http.StatusBadRequest,
	)
	ErrInvalidCode = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired code",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)
