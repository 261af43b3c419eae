package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"pdf-summary-client/internal/domain"
	"pdf-summary-client/internal/infra/summarizer"
	"pdf-summary-client/internal/service"
)

// MockHandlerLogger is used by handler package tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}

// fakeRemote stands in for the summarization and export service.
type fakeRemote struct {
	mu            sync.Mutex
	uploads       int
	exports       []domain.ExportRequest
	uploadStatus  int
	uploadBody    string
	exportStatus  int
	exportPayload string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		uploadStatus:  http.StatusOK,
		uploadBody:    `{"filename":"valid.pdf","text_length":1234,"summary":"S","extracted_text":"T"}`,
		exportStatus:  http.StatusOK,
		exportPayload: "%PDF-1.4 summary",
	}
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/upload-pdf":
		f.uploads++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.uploadStatus)
		_, _ = io.WriteString(w, f.uploadBody)
	case "/download-summary":
		var req domain.ExportRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.exports = append(f.exports, req)
		if f.exportStatus != http.StatusOK {
			w.WriteHeader(f.exportStatus)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, f.exportPayload)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeRemote) Uploads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads
}

type testApp struct {
	remote   *fakeRemote
	view     *WebView
	hub      *ProgressHub
	workflow *service.UploadWorkflow
	router   http.Handler
}

func newTestApp(t *testing.T, maxFileSize int64) *testApp {
	t.Helper()
	return newTestAppWithDownloadLimit(t, maxFileSize, 1<<20)
}

func newTestAppWithDownloadLimit(t *testing.T, maxFileSize, maxDownloadSize int64) *testApp {
	t.Helper()

	remote := newFakeRemote()
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	logger := NewMockHandlerLogger()
	client := summarizer.NewClientWithHTTP(srv.URL, srv.Client(), logger)
	hub := NewProgressHub(nil, logger)
	view := NewWebView(hub)
	workflow := service.NewUploadWorkflow(client, client, view, service.NewResultFormatter("it-IT"), maxFileSize, logger)
	handler := NewWorkflowHandler(workflow, view, maxFileSize, maxDownloadSize, logger)

	return &testApp{
		remote:   remote,
		view:     view,
		hub:      hub,
		workflow: workflow,
		router:   NewRouter(handler, hub, []string{"http://localhost:3000"}),
	}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = part.Write(content)
	} else {
		_ = writer.WriteField("other", "value")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-pdf", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
