package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pdf-summary-client/internal/domain"
	apperrors "pdf-summary-client/pkg/errors"
)

func TestTerminalView_Progress(t *testing.T) {
	var out, errOut bytes.Buffer
	view := NewTerminalView(&out, &errOut)

	view.ShowProgress()
	assert.True(t, view.Busy())
	assert.Equal(t, "Processing document...\n", errOut.String())

	view.HideProgress()
	assert.False(t, view.Busy())
	assert.Empty(t, out.String())
}

func TestTerminalView_ShowResults(t *testing.T) {
	var out, errOut bytes.Buffer
	view := NewTerminalView(&out, &errOut)

	view.ShowResults(domain.ResultView{
		Filename:       "valid.pdf",
		CharacterCount: "1.234 caratteri",
		Summary:        "S",
		ExtractedText:  "T",
	})

	assert.Equal(t, "File: valid.pdf\nLength: 1.234 caratteri\n\nSummary:\nS\n\nExtracted text:\nT\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTerminalView_Notify(t *testing.T) {
	var out, errOut bytes.Buffer
	view := NewTerminalView(&out, &errOut)

	view.Notify(apperrors.NewRemoteProcessingError("PDF appears to be empty", 400))
	view.Notify(errors.New("plain failure"))

	assert.Equal(t, "Error: PDF appears to be empty\nError: plain failure\n", errOut.String())
	assert.Empty(t, out.String())
}
