package utils

import "errors"

var (
	// Generation-stage errors. All three are fatal to the request and map to
	// distinct HTTP statuses in api_wrap.go.
	ErrQuotaExceeded      = errors.New("generation quota exceeded")
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrGenerationFailed   = errors.New("generation failed")

	ErrInvalidRequest       = errors.New("invalid request")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrArchiveNotConfigured = errors.New("itinerary archive not configured")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
