package apperror

import (
	"errors"
	"net/http"
)

// HTTPError adalah bentuk error yang siap dikirim ke client.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to its client-facing form. Errors that are not an
// *AppError never leak their text: they become a generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// IsClientError reports whether err resolves to a 4xx response.
func IsClientError(err error) bool {
	status := ToHTTP(err).Status
	return status >= 400 && status < 500
}
