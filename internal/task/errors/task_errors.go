package taskerrors

import (
	"go-orgsuite/internal/shared/apperror"
	"net/http"
)

var (
	// Dipakai juga saat task ada tapi milik org lain:
	// dua kasus itu sengaja tidak dibedakan di response.
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task status",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid due_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
