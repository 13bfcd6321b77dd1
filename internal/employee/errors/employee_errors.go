package employeeerrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists in this organization",
		http.StatusConflict,
	)
	ErrPositionNotInOrg = apperror.New(
		apperror.CodeInvalidInput,
		"Position does not belong to this organization",
		http.StatusBadRequest,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid join date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
