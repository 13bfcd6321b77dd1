package targeterrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Target not found",
		http.StatusNotFound,
	)
	ErrEmptyImport = apperror.New(
		apperror.CodeInvalidInput,
		"Import produced no rows",
		http.StatusBadRequest,
	)
)
