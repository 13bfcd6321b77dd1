package assessmenterrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrAssessmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assessment not found",
		http.StatusNotFound,
	)
	ErrNoItems = apperror.New(
		apperror.CodeInvalidInput,
		"Assessment requires at least one item",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assessment period",
		http.StatusBadRequest,
	)
)
