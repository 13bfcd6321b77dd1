package chaterrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrThreadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Thread not found",
		http.StatusNotFound,
	)
	ErrMessageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Message not found",
		http.StatusNotFound,
	)
	ErrParentNotInThread = apperror.New(
		apperror.CodeInvalidInput,
		"Parent message does not belong to this thread",
		http.StatusBadRequest,
	)
	ErrNoPoll = apperror.New(
		apperror.CodeInvalidInput,
		"Message does not carry a poll",
		http.StatusBadRequest,
	)
	ErrUnknownPollOption = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown poll option",
		http.StatusBadRequest,
	)
)
