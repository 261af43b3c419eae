package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	apperrors "pdf-summary-client/pkg/errors"
)

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError writes err with the status code of its AppError type
func writeAppError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.GetStatusCode(err), map[string]string{
		"error": userMessage(err),
		"type":  string(errorType(err)),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// wantsJSON reports whether the caller is a script rather than a form post.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func userMessage(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.UserMessage()
	}
	return err.Error()
}

func errorType(err error) apperrors.ErrorType {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.Type
	}
	return apperrors.ErrorTypeInternal
}
