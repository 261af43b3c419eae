package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_StatusCodes(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")

	tests := []struct {
		name   string
		err    *AppError
		typ    ErrorType
		status int
	}{
		{"validation", NewValidationError("no file selected"), ErrorTypeValidation, http.StatusBadRequest},
		{"remote processing", NewRemoteProcessingError("bad pdf", http.StatusBadRequest), ErrorTypeRemoteProcessing, http.StatusBadGateway},
		{"connectivity", NewConnectivityError("unreachable", cause), ErrorTypeConnectivity, http.StatusServiceUnavailable},
		{"download", NewDownloadError("export failed", cause), ErrorTypeDownload, http.StatusBadGateway},
		{"internal", NewInternalError("oops", cause), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.status, GetStatusCode(tt.err))
			assert.True(t, IsType(tt.err, tt.typ))
		})
	}
}

func TestIsType_Wrapped(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewConnectivityError("unreachable", nil))

	assert.True(t, IsType(err, ErrorTypeConnectivity))
	assert.False(t, IsType(err, ErrorTypeValidation))
	assert.Equal(t, http.StatusServiceUnavailable, GetStatusCode(err))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(stderrors.New("plain")))
}

func TestAppError_Messages(t *testing.T) {
	v := NewValidationError("file too large", "maximum 5MB")
	assert.Equal(t, "validation: file too large (maximum 5MB)", v.Error())
	assert.Equal(t, "file too large: maximum 5MB", v.UserMessage())

	r := NewRemoteProcessingError("Il file deve essere un PDF", http.StatusBadRequest)
	assert.Equal(t, "Il file deve essere un PDF", r.UserMessage())
	assert.Equal(t, http.StatusBadRequest, r.RemoteStatus)

	cause := stderrors.New("status 500")
	d := NewDownloadError("could not download the summary PDF", cause)
	assert.Equal(t, "could not download the summary PDF: status 500", d.UserMessage())
	assert.ErrorIs(t, d, cause)
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("no file selected")
	err := NewValidationError(cause.Error()).WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no file selected", err.UserMessage())
}
