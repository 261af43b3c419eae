package domain

import (
	"context"
	"io"
	"time"
)

// SummarizationService extracts text from a PDF and summarizes it.
type SummarizationService interface {
	Summarize(ctx context.Context, file *FileHandle) (*SummarizationResult, error)
}

// PdfExportService renders a summary into a PDF. The caller closes the returned stream.
type PdfExportService interface {
	ExportPDF(ctx context.Context, req ExportRequest) (io.ReadCloser, error)
}

// View is the surface the workflow drives: busy indicator, result view,
// file selection and blocking notifications.
type View interface {
	ShowProgress()
	HideProgress()
	ShowResults(result ResultView)
	HideResults()
	ClearSelection()
	Notify(err error)
}

// Downloader delivers a named binary payload to the user.
type Downloader interface {
	Deliver(ctx context.Context, name string, payload io.Reader) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetBaseURL() string
	GetLogLevel() string
	GetLocale() string
	GetRequestTimeout() time.Duration
	GetMaxFileSize() int64
	GetMaxDownloadSize() int64
	GetDownloadDir() string
	GetAllowedOrigins() []string
}

// UploadWorkflow is the controller front ends drive.
type UploadWorkflow interface {
	Submit(ctx context.Context, file *FileHandle) error
	Export(ctx context.Context, downloader Downloader) error
	Reset()
	Phase() Phase
}
