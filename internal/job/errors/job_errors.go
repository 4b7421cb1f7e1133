package joberrors

import (
	"net/http"

	"go-dispatch/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)

	ErrInvalidRequestLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request location data",
		http.StatusBadRequest,
	)

	ErrRequestLocationOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Request coordinates are out of valid range",
		http.StatusBadRequest,
	)
)
