package positionerrors

import (
	"net/http"

	"go-orgsuite/internal/shared/apperror"
)

var ErrPositionNotFound = apperror.New(
	apperror.CodeNotFound,
	"Position not found",
	http.StatusNotFound,
)
