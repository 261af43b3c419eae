package domain

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// FileHandle is a user-selected file ready to be uploaded.
type FileHandle struct {
	Filename string
	// Size in bytes, or -1 when unknown.
	Size   int64
	Reader io.Reader
}

// NewFileHandle builds a FileHandle, stripping any path components from the name.
func NewFileHandle(name string, size int64, r io.Reader) *FileHandle {
	return &FileHandle{
		Filename: filepath.Base(strings.TrimSpace(name)),
		Size:     size,
		Reader:   r,
	}
}

// Validate reports whether the file can be submitted. A nil handle or a
// handle without content means no file was selected.
func (f *FileHandle) Validate(maxSize int64) error {
	if f == nil || f.Reader == nil {
		return ErrNoFileSelected
	}
	if !strings.EqualFold(filepath.Ext(f.Filename), ".pdf") {
		return &ValidationError{Field: "file", Message: "the file must be a PDF"}
	}
	if maxSize > 0 && f.Size > maxSize {
		return &ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("file too large, maximum %s", formatSize(maxSize)),
		}
	}
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
