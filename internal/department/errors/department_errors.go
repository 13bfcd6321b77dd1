package departmenterrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var ErrDepartmentNotFound = apperror.New(
	apperror.CodeNotFound,
	"Department not found",
	http.StatusNotFound,
)
