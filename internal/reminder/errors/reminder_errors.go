package remindererrors

import (
	"go-orgsuite/internal/shared/apperror"
	"net/http"
)

var (
	ErrReminderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Reminder not found",
		http.StatusNotFound,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid due date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidReminderTarget = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid reminder organization or user reference",
		http.StatusBadRequest,
	)
)
