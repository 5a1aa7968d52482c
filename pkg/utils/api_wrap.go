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

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinels to HTTP statuses. Anything
// unrecognized is reported as a 400 carrying the underlying message, which is
// how this backend has always folded persistence faults into client errors.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrMissingAuthHeader):
		RespondError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
	case errors.Is(err, ErrInvalidIdentityToken):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired Google ID token")
	case errors.Is(err, ErrFileNotFound):
		RespondError(c, http.StatusNotFound, "File not found")
	case errors.Is(err, ErrNoFiles):
		RespondError(c, http.StatusNotFound, "No files found")
	case errors.Is(err, ErrDuplicateVersion):
		RespondError(c, http.StatusBadRequest, "Upload failed: Please ensure unique version")
	default:
		log.Printf("Unexpected error: %v", err)
		RespondError(c, http.StatusBadRequest, err.Error())
	}
}
