package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation"
	ErrorTypeRemoteProcessing ErrorType = "remote_processing"
	ErrorTypeConnectivity     ErrorType = "connectivity"
	ErrorTypeDownload         ErrorType = "download"
	ErrorTypeInternal         ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`

	// RemoteStatus is the status the remote service answered with, if any.
	RemoteStatus int `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying cause and returns the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// UserMessage is the text shown to the user in a blocking notification.
func (e *AppError) UserMessage() string {
	switch {
	case e.Details != "":
		return e.Message + ": " + e.Details
	case e.Cause != nil && e.Type == ErrorTypeDownload:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Message
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewRemoteProcessingError creates an error for a request the remote service
// received but rejected or failed to process.
func NewRemoteProcessingError(message string, remoteStatus int) *AppError {
	return &AppError{
		Type:         ErrorTypeRemoteProcessing,
		Message:      message,
		StatusCode:   http.StatusBadGateway,
		RemoteStatus: remoteStatus,
	}
}

// NewConnectivityError creates an error for a remote service that could not be reached
func NewConnectivityError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeConnectivity,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewDownloadError creates an error for a failed summary export
func NewDownloadError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeDownload,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
