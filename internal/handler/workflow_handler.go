package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"mime/multipart"
	"net/http"

	"pdf-summary-client/internal/domain"
	apperrors "pdf-summary-client/pkg/errors"
)

// multipartOverhead is allowed on top of the file size for form boundaries and headers.
const multipartOverhead = 1 << 20

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// WorkflowHandler serves the upload page and relays its actions to the workflow.
type WorkflowHandler struct {
	workflow        domain.UploadWorkflow
	view            *WebView
	maxFileSize     int64
	maxDownloadSize int64
	logger          domain.Logger
}

// NewWorkflowHandler creates a new workflow handler instance
func NewWorkflowHandler(
	workflow domain.UploadWorkflow,
	view *WebView,
	maxFileSize int64,
	maxDownloadSize int64,
	logger domain.Logger,
) *WorkflowHandler {
	return &WorkflowHandler{
		workflow:        workflow,
		view:            view,
		maxFileSize:     maxFileSize,
		maxDownloadSize: maxDownloadSize,
		logger:          logger,
	}
}

type pageData struct {
	PageState
	Phase        domain.Phase
	Notification string
	MaxFileSize  int64
}

// Index renders the upload page
func (h *WorkflowHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK)
}

// UploadPDF submits the "file" form field for summarization
func (h *WorkflowHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		tooLarge := apperrors.NewValidationError("file too large", "the upload exceeds the configured limit")
		h.view.Notify(tooLarge)
		h.respond(w, r, tooLarge)
		return
	}

	var handle *domain.FileHandle
	if err == nil {
		defer file.Close()
		handle = fileHandle(file, header)
		h.view.Select(handle.Filename)
	}

	// A missing or empty file field is a nil handle, rejected by the workflow.
	err = h.workflow.Submit(r.Context(), handle)
	h.respond(w, r, err)
}

// DownloadSummary exports the last summary as an attached "summary.pdf"
func (h *WorkflowHandler) DownloadSummary(w http.ResponseWriter, r *http.Request) {
	downloader := newResponseDownloader(w, h.maxDownloadSize)

	err := h.workflow.Export(r.Context(), downloader)
	if err == nil {
		return
	}
	if downloader.written {
		h.logger.Error("Summary download interrupted", err)
		return
	}
	if wantsJSON(r) {
		h.view.TakeNotification()
		writeAppError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset returns the page to its initial state
func (h *WorkflowHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.workflow.Reset()
	if wantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WorkflowHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	if wantsJSON(r) {
		h.view.TakeNotification()
		switch {
		case errors.Is(err, domain.ErrSubmitCancelled):
			writeError(w, http.StatusConflict, err.Error())
		case err != nil:
			writeAppError(w, err)
		default:
			writeJSON(w, http.StatusOK, h.view.Snapshot().Result)
		}
		return
	}

	status := http.StatusOK
	switch {
	case errors.Is(err, domain.ErrSubmitCancelled):
		status = http.StatusConflict
	case err != nil:
		status = apperrors.GetStatusCode(err)
	}
	h.render(w, status)
}

func (h *WorkflowHandler) render(w http.ResponseWriter, status int) {
	data := pageData{
		PageState:    h.view.Snapshot(),
		Phase:        h.workflow.Phase(),
		Notification: h.view.TakeNotification(),
		MaxFileSize:  h.maxFileSize,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("Failed to render page", err)
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func fileHandle(file multipart.File, header *multipart.FileHeader) *domain.FileHandle {
	return domain.NewFileHandle(header.Filename, header.Size, file)
}
