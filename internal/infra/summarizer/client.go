package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"pdf-summary-client/internal/domain"
	apperrors "pdf-summary-client/pkg/errors"
)

const (
	uploadPath   = "/upload-pdf"
	downloadPath = "/download-summary"

	// maxErrorBody bounds how much of a failure response is read for its detail.
	maxErrorBody = 64 << 10

	fallbackDetail = "processing failed"
)

// Client talks to the remote summarization and PDF export endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  domain.Logger
}

// NewClient creates a client for the service at config.GetBaseURL()
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return NewClientWithHTTP(config.GetBaseURL(), &http.Client{Timeout: config.GetRequestTimeout()}, logger)
}

// NewClientWithHTTP creates a client using the given http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger domain.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// BaseURL returns the service base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Summarize uploads the file as multipart field "file" and decodes the summary.
func (c *Client) Summarize(ctx context.Context, file *domain.FileHandle) (*domain.SummarizationResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upload", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, apperrors.NewInternalError("failed to read selected file", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to build upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &buf)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Debug("Uploading PDF", "filename", file.Filename, "bytes", buf.Len())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		detail := readDetail(resp.Body)
		if detail == "" {
			detail = fallbackDetail
		}
		c.logger.Warn("Summarization service rejected upload", "status", resp.StatusCode, "detail", detail)
		return nil, apperrors.NewRemoteProcessingError(detail, resp.StatusCode)
	}

	var result domain.SummarizationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.NewRemoteProcessingError("invalid response from summarization service", resp.StatusCode).WithCause(err)
	}
	return &result, nil
}

// ExportPDF posts the summary as JSON and returns the PDF stream.
func (c *Client) ExportPDF(ctx context.Context, exportReq domain.ExportRequest) (io.ReadCloser, error) {
	body, err := json.Marshal(exportReq)
	if err != nil {
		return nil, apperrors.NewDownloadError("could not download the summary PDF", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+downloadPath, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewDownloadError("could not download the summary PDF", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewDownloadError("could not download the summary PDF", err)
	}

	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		cause := fmt.Errorf("export service returned status %d", resp.StatusCode)
		if detail := readDetail(resp.Body); detail != "" {
			cause = fmt.Errorf("%w: %s", cause, detail)
		}
		return nil, apperrors.NewDownloadError("could not download the summary PDF", cause)
	}
	return resp.Body, nil
}

// Ping checks that the service answers on its root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return apperrors.NewInternalError("failed to build ping request", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if !isSuccess(resp.StatusCode) {
		return apperrors.NewRemoteProcessingError("summarization service is not healthy", resp.StatusCode)
	}
	return nil
}

// transportError classifies a failed round trip. Cancellation by the caller
// is passed through so the workflow can tell it apart from an outage.
func (c *Client) transportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	c.logger.Error("Summarization service unreachable", err, "base_url", c.baseURL)
	return apperrors.NewConnectivityError(
		fmt.Sprintf("could not reach the summarization service, make sure it is running at %s", c.baseURL),
		err,
	)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body domain.RemoteErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Detail)
}
