package domain

import "errors"

// Domain errors
var (
	ErrNoFileSelected   = errors.New("no file selected")
	ErrSubmitInProgress = errors.New("a document is already being processed")
	ErrSubmitCancelled  = errors.New("submission cancelled")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
