package organizationerrors

import (
	"go-orgsuite/internal/shared/apperror"
	"net/http"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	ErrSlugAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Organization slug already taken",
		http.StatusConflict,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
	ErrNotAMember = apperror.New(
		apperror.CodeForbidden,
		"You are not a member of this organization",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the organization owner can perform this action",
		http.StatusForbidden,
	)
)
