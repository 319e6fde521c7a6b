// Package dto provides the response bodies shared by all resources.
package dto

import (
	"net/http"
	"time"

	"imaut/internal/core/apperror"
)

// ValidationErrorResponse is the body of a 400 caused by constraint violations.
type ValidationErrorResponse struct {
	Timestamp int64                `json:"timestamp"`
	Path      string               `json:"path"`
	Status    int                  `json:"status"`
	Error     string               `json:"error"`
	Message   string               `json:"message"`
	Errors    []apperror.Violation `json:"errors"`
}

// NewValidationErrorResponse builds the body for path at now.
func NewValidationErrorResponse(now time.Time, path, message string, violations []apperror.Violation) ValidationErrorResponse {
	if violations == nil {
		violations = []apperror.Violation{}
	}
	return ValidationErrorResponse{
		Timestamp: now.UnixMilli(),
		Path:      path,
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   message,
		Errors:    violations,
	}
}

// ErrorResponse is the body of every other error.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
