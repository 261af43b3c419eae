package cli

import (
	"fmt"
	"io"
	"sync"

	"pdf-summary-client/internal/domain"
	apperrors "pdf-summary-client/pkg/errors"
)

// TerminalView implements domain.View on a pair of writers.
type TerminalView struct {
	out io.Writer
	err io.Writer

	mu   sync.Mutex
	busy bool
}

// NewTerminalView creates a view printing results to out and notifications to errOut.
func NewTerminalView(out, errOut io.Writer) *TerminalView {
	return &TerminalView{out: out, err: errOut}
}

func (v *TerminalView) ShowProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = true
	fmt.Fprintln(v.err, "Processing document...")
}

func (v *TerminalView) HideProgress() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = false
}

// Busy reports whether the progress indicator is showing.
func (v *TerminalView) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

func (v *TerminalView) ShowResults(result domain.ResultView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "File: %s\n", result.Filename)
	fmt.Fprintf(v.out, "Length: %s\n\n", result.CharacterCount)
	fmt.Fprintf(v.out, "Summary:\n%s\n\n", result.Summary)
	fmt.Fprintf(v.out, "Extracted text:\n%s\n", result.ExtractedText)
}

// HideResults is a no-op: printed output cannot be taken back.
func (v *TerminalView) HideResults() {}

func (v *TerminalView) ClearSelection() {}

func (v *TerminalView) Notify(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	msg := err.Error()
	if appErr, ok := apperrors.As(err); ok {
		msg = appErr.UserMessage()
	}
	fmt.Fprintf(v.err, "Error: %s\n", msg)
}
