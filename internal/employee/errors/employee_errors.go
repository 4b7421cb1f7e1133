package employeeerrors

import (
	"net/http"

	"go-dispatch/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)

	ErrRequesterUnknown = apperror.New(
		apperror.CodeUnauthorized,
		"User not found",
		http.StatusUnauthorized,
	)

	ErrCredentialLogsForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only administrators can view credential logs",
		http.StatusForbidden,
	)
)
