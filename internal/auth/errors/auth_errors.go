package autherrors

import (
	"net/http"

	"foome-hcm/internal/shared/apperror"
)

var (
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrCNPJTaken = apperror.New(
		apperror.CodeConflict,
		"company is already registered",
		http.StatusConflict,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
)
