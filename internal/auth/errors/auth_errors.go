package autherrors

import (
	"go-orgsuite/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeForbidden,
		"This account has been deactivated",
		http.StatusForbidden,
	)
)
