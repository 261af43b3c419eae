package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pdf-summary-client/internal/domain"
)

func newSummarizeCmd(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "summarize [FILE]",
		Short: "Summarize a PDF and optionally download the summary as a PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := NewTerminalView(cmd.OutOrStdout(), cmd.ErrOrStderr())
			workflow := a.container.NewWorkflow(view)

			var file *domain.FileHandle
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()

				info, err := f.Stat()
				if err != nil {
					return fmt.Errorf("stat %s: %w", args[0], err)
				}
				file = domain.NewFileHandle(args[0], info.Size(), f)
			}

			// The workflow already reported any failure through the view.
			if err := workflow.Submit(cmd.Context(), file); err != nil {
				return reported(err)
			}
			if !export {
				return nil
			}

			downloader := NewFileDownloader(a.container.GetConfig().GetDownloadDir())
			if err := workflow.Export(cmd.Context(), downloader); err != nil {
				return reportedError{err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSummary PDF saved to %s\n", downloader.LastPath())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&export, "export", "e", false, "download the summary rendered as summary.pdf")
	cmd.Flags().StringP("output", "o", "", "directory for the downloaded summary (default from config)")
	return cmd
}

// reported marks workflow errors the view has shown. Cancellation is never
// shown by the view, so it is left for Execute to print.
func reported(err error) error {
	if errors.Is(err, domain.ErrSubmitCancelled) {
		return err
	}
	return reportedError{err}
}
