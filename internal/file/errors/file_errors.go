package fileerrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var (
	ErrFolderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Folder not found",
		http.StatusNotFound,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"File not found",
		http.StatusNotFound,
	)
	ErrEmptyUpload = apperror.New(
		apperror.CodeInvalidInput,
		"Uploaded file is empty",
		http.StatusBadRequest,
	)
)
