package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileDownloader saves delivered payloads into a directory. The file only
// appears under its final name once fully written.
type FileDownloader struct {
	dir  string
	last string
}

// NewFileDownloader creates a downloader writing into dir
func NewFileDownloader(dir string) *FileDownloader {
	return &FileDownloader{dir: dir}
}

// Deliver writes payload to dir/name
func (d *FileDownloader) Deliver(ctx context.Context, name string, payload io.Reader) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(d.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(d.dir, filepath.Base(name))
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	d.last = target
	return nil
}

// LastPath returns where the last delivery was saved
func (d *FileDownloader) LastPath() string {
	return d.last
}
