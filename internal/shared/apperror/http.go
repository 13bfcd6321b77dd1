package apperror

import (
	"errors"
	"net/http"
	"os"
)

// HTTPError adalah bentuk final error yang siap ditulis ke response
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

// ToHTTP mengubah error apapun menjadi HTTPError.
// AppError dipetakan apa adanya; error lain menjadi 500 generik.
// Detail internal hanya diikutkan di luar mode production.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	httpErr := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
	if os.Getenv("APP_ENV") != "production" && err != nil {
		httpErr.Details = err.Error()
	}
	return httpErr
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" is required",
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		field+" is invalid",
		http.StatusBadRequest,
	)
}
