package service

import (
	"context"
	"errors"
	"sync"

	"pdf-summary-client/internal/domain"
	apperrors "pdf-summary-client/pkg/errors"
)

// UploadWorkflow submits a PDF for summarization, shows the result and
// exports the stored summary back as a PDF.
//
// At most one submission is in flight: a second Submit while busy is
// rejected. Reset cancels an in-flight submission and any result that
// arrives afterwards is discarded.
type UploadWorkflow struct {
	summarizer  domain.SummarizationService
	exporter    domain.PdfExportService
	view        domain.View
	formatter   *ResultFormatter
	maxFileSize int64
	logger      domain.Logger

	mu     sync.Mutex
	state  domain.UploadState
	phase  domain.Phase
	token  uint64
	cancel context.CancelFunc
}

// NewUploadWorkflow creates a workflow in the idle phase.
func NewUploadWorkflow(
	summarizer domain.SummarizationService,
	exporter domain.PdfExportService,
	view domain.View,
	formatter *ResultFormatter,
	maxFileSize int64,
	logger domain.Logger,
) *UploadWorkflow {
	return &UploadWorkflow{
		summarizer:  summarizer,
		exporter:    exporter,
		view:        view,
		formatter:   formatter,
		maxFileSize: maxFileSize,
		logger:      logger,
		state:       domain.NewUploadState(),
		phase:       domain.PhaseIdle,
	}
}

// State returns a copy of the current upload state.
func (w *UploadWorkflow) State() domain.UploadState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Phase returns the current UI phase.
func (w *UploadWorkflow) Phase() domain.Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Submit uploads file and renders the summary on success. Every failure is
// also reported through the view before being returned.
func (w *UploadWorkflow) Submit(ctx context.Context, file *domain.FileHandle) error {
	w.mu.Lock()
	if w.phase == domain.PhaseBusy {
		w.mu.Unlock()
		w.logger.Warn("Submit rejected, another document is being processed")
		return w.fail(validationError(domain.ErrSubmitInProgress))
	}

	if err := file.Validate(w.maxFileSize); err != nil {
		w.phase = domain.PhaseIdle
		w.mu.Unlock()
		w.view.HideResults()
		return w.fail(validationError(err))
	}

	ctx, cancel := context.WithCancel(ctx)
	w.token++
	token := w.token
	w.cancel = cancel
	w.phase = domain.PhaseBusy
	w.state.SelectedFile = file
	w.mu.Unlock()

	w.view.HideResults()
	w.view.ShowProgress()
	defer w.finish(token, cancel)

	w.logger.Info("Submitting document", "filename", file.Filename, "size", file.Size)

	result, err := w.summarizer.Summarize(ctx, file)

	w.mu.Lock()
	if w.token != token {
		w.mu.Unlock()
		w.logger.Info("Discarding result of a reset submission", "filename", file.Filename)
		return domain.ErrSubmitCancelled
	}
	if err != nil {
		w.phase = domain.PhaseIdle
		w.mu.Unlock()
		if errors.Is(err, context.Canceled) {
			w.logger.Info("Submission cancelled", "filename", file.Filename)
			return domain.ErrSubmitCancelled
		}
		return w.fail(classifySubmitError(err))
	}

	w.state.LastSummary = result.Summary
	w.state.LastFilename = result.Filename
	w.phase = domain.PhaseShowingResults
	w.mu.Unlock()

	w.logger.Info("Document summarized", "filename", result.Filename, "text_length", result.TextLength)
	w.view.ShowResults(w.formatter.ResultView(result))
	return nil
}

// finish releases the submission's context and hides the busy indicator,
// unless a reset or a newer submission already owns the view.
func (w *UploadWorkflow) finish(token uint64, cancel context.CancelFunc) {
	cancel()

	w.mu.Lock()
	current := w.token == token
	if current {
		w.cancel = nil
	}
	w.mu.Unlock()

	if current {
		w.view.HideProgress()
	}
}

// Export asks the export service to render the last summary and hands the
// PDF to downloader as "summary.pdf".
func (w *UploadWorkflow) Export(ctx context.Context, downloader domain.Downloader) error {
	req := w.State().ExportRequest()

	w.logger.Info("Exporting summary", "filename", req.Filename)

	body, err := w.exporter.ExportPDF(ctx, req)
	if err != nil {
		return w.fail(classifyExportError(err))
	}
	defer body.Close()

	if err := downloader.Deliver(ctx, domain.DownloadFilename, body); err != nil {
		return w.fail(apperrors.NewDownloadError("could not save the summary PDF", err))
	}

	w.logger.Info("Summary PDF delivered", "name", domain.DownloadFilename)
	return nil
}

// Reset returns the workflow to its initial state. It is idempotent.
func (w *UploadWorkflow) Reset() {
	w.mu.Lock()
	w.token++
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.state = domain.NewUploadState()
	w.phase = domain.PhaseIdle
	w.mu.Unlock()

	w.view.ClearSelection()
	w.view.HideResults()
	w.view.HideProgress()
	w.logger.Debug("Workflow reset")
}

func (w *UploadWorkflow) fail(err *apperrors.AppError) error {
	if err.Type == apperrors.ErrorTypeValidation {
		w.logger.Warn("Operation rejected", "reason", err.UserMessage())
	} else {
		w.logger.Error("Operation failed", err, "type", string(err.Type))
	}
	w.view.Notify(err)
	return err
}

func validationError(err error) *apperrors.AppError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.NewValidationError(vErr.Message).WithCause(err)
	}
	return apperrors.NewValidationError(err.Error()).WithCause(err)
}

func classifySubmitError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	return apperrors.NewInternalError("unexpected error while processing the document", err)
}

func classifyExportError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.ErrorTypeDownload {
		return appErr
	}
	return apperrors.NewDownloadError("could not download the summary PDF", err)
}
