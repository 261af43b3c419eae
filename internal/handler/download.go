package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// responseDownloader delivers an exported PDF as an attachment of the
// current HTTP response.
type responseDownloader struct {
	w       http.ResponseWriter
	limit   int64
	written bool
}

// newResponseDownloader creates a downloader buffering at most limit bytes.
// A non-positive limit disables the cap.
func newResponseDownloader(w http.ResponseWriter, limit int64) *responseDownloader {
	return &responseDownloader{w: w, limit: limit}
}

// Deliver buffers the payload first so a failed read can still be reported
// as a normal error response.
func (d *responseDownloader) Deliver(ctx context.Context, name string, payload io.Reader) error {
	if d.limit > 0 {
		payload = io.LimitReader(payload, d.limit+1)
	}
	data, err := io.ReadAll(payload)
	if err != nil {
		return fmt.Errorf("read exported pdf: %w", err)
	}
	if d.limit > 0 && int64(len(data)) > d.limit {
		return fmt.Errorf("exported pdf exceeds %d bytes", d.limit)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.w.Header().Set("Content-Type", "application/pdf")
	d.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	d.w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	d.w.WriteHeader(http.StatusOK)
	d.written = true

	_, err = d.w.Write(data)
	return err
}
