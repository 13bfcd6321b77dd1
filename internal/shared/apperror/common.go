package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrMissingScope dipakai handler yang butuh organisasi aktif
	// tapi resolver tidak menghasilkan scope (user tanpa membership).
	ErrMissingScope = New(
		CodeMissingScope,
		"No active organization in this request",
		http.StatusBadRequest,
	)

	// ErrForbiddenScope: header organisasi menunjuk org yang bukan milik user.
	// Berbeda dengan ErrMissingScope, ini penolakan eksplisit (403).
	ErrForbiddenScope = New(
		CodeForbidden,
		"You are not a member of the requested organization",
		http.StatusForbidden,
	)
)
