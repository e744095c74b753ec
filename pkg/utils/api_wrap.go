package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

// RespondError writes the bare {"error": ...} shape the form collaborator
// expects, not the envelope.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// HandleServiceError maps pipeline errors to HTTP statuses: quota exhaustion
// to 429, transient overload to 503, everything else generation-related to
// 500. Archive lookups get their own 404/503 mappings.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		RespondError(c, http.StatusTooManyRequests,
			"AI service quota exceeded. Please try again tomorrow or upgrade your plan.")
	case errors.Is(err, ErrServiceUnavailable):
		RespondError(c, http.StatusServiceUnavailable,
			"AI service is temporarily busy. Please wait a few minutes and try again.")
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusInternalServerError,
			"Unable to generate AI itinerary. Please try again later.")
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrArchiveNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, "Itinerary archive is not configured")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	}
}
