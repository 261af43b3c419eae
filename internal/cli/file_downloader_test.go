package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDownloader_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := NewFileDownloader(dir)

	err := d.Deliver(context.Background(), "summary.pdf", strings.NewReader("%PDF-1.4 summary"))
	require.NoError(t, err)

	want := filepath.Join(dir, "summary.pdf")
	assert.Equal(t, want, d.LastPath())

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 summary", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should not be left behind")
}

func TestFileDownloader_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDownloader(dir)

	require.NoError(t, d.Deliver(context.Background(), "../../summary.pdf", strings.NewReader("x")))
	assert.Equal(t, filepath.Join(dir, "summary.pdf"), d.LastPath())
}

func TestFileDownloader_CancelledLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDownloader(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Deliver(ctx, "summary.pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.LastPath())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
