package usererrors

import (
	"go-orgsuite/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Only application admins can perform this action",
		http.StatusForbidden,
	)
)
