package programerrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrProgramNotFound = apperror.New(
		apperror.CodeNotFound,
		"Program not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid program status",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must not be after end date",
		http.StatusBadRequest,
	)
)
