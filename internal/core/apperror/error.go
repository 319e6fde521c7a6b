// Package apperror provides structured error handling for the resource APIs.
// Handlers and services return AppError; the HTTP error middleware renders it.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	// Request errors (400, 415)
	CodeValidation       = "VALIDATION_ERROR"
	CodeValidationFailed = "CONSTRAINT_VIOLATION"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"
)

// Violation is a single failed field constraint.
type Violation struct {
	DefaultMessage string `json:"defaultMessage"`
	ObjectName     string `json:"objectName"`
	Field          string `json:"field"`
	RejectedValue  any    `json:"rejectedValue"`
	Code           string `json:"code"`
}

// AppError is the standard error type for the platform.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context
	Details map[string]any `json:"details,omitempty"`

	// Violations is set for CodeValidationFailed
	Violations []Violation `json:"-"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a generic validation error (400) without field violations.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidationFailed creates a constraint violation error (400).
// An empty message is derived from the violations as "field: message, ...".
func NewValidationFailed(message string, violations []Violation) *AppError {
	if message == "" {
		message = summarize(violations)
	}
	return &AppError{
		Code:       CodeValidationFailed,
		Message:    message,
		Violations: violations,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidInput creates an error for unreadable request bodies (400).
func NewInvalidInput(message string, cause error) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        cause,
	}
}

// NewUnsupportedMediaType creates an error for a rejected Content-Type (415).
func NewUnsupportedMediaType(got, want string) *AppError {
	return &AppError{
		Code:       CodeUnsupportedMedia,
		Message:    fmt.Sprintf("content type %q is not supported, expected %q", got, want),
		HTTPStatus: http.StatusUnsupportedMediaType,
		Details:    map[string]any{"contentType": got, "expected": want},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewDatabase wraps a storage failure (500).
func NewDatabase(op string, err error) *AppError {
	return &AppError{
		Code:       CodeDatabase,
		Message:    "Database error",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"operation": op},
		Err:        err,
	}
}

// --- Helper functions ---

func summarize(violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.Field+": "+v.DefaultMessage)
	}
	return strings.Join(parts, ", ")
}

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsValidationFailed checks if error carries field violations.
func IsValidationFailed(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeValidationFailed
	}
	return false
}
