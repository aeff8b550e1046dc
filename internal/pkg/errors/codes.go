package errors

import "net/http"

var (
	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidWindow = New(
		"INVALID_WINDOW",
		"Invalid time window",
		http.StatusBadRequest,
	)

	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"Region not found",
		http.StatusNotFound,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
