package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pdf-summary-client/internal/config"
	apperrors "pdf-summary-client/pkg/errors"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgFile   string
	viper     *viper.Viper
	container *config.Container
}

func newApp() *app {
	return &app{viper: viper.New()}
}

// NewRootCmd builds the pdfsummary command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdfsummary",
		Short: "Summarize PDF documents with a remote summarization service",
		Long: `pdfsummary uploads a PDF to a summarization service, shows the extracted
text and summary, and downloads the summary rendered back as a PDF.

Run "pdfsummary serve" for the browser front end or
"pdfsummary summarize FILE" to do it from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.pdfsummary.yaml)")
	rootCmd.PersistentFlags().StringP("base-url", "u", "", "base URL of the summarization service")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("locale", "", "locale used to format results, e.g. it-IT")

	rootCmd.AddCommand(
		newServeCmd(a),
		newSummarizeCmd(a),
		newPingCmd(a),
	)
	return rootCmd
}

var flagKeys = map[string]string{
	"base-url":  "base_url",
	"log-level": "log_level",
	"locale":    "locale",
	"port":      "server_port",
	"output":    "download_dir",
}

// load binds the flags that were set on the command line and builds the container.
func (a *app) load(cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := a.viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return err
	}
	a.container = config.NewContainer(cfg)
	return nil
}

// close flushes buffered log entries. It is safe to call before load.
func (a *app) close() {
	if a.container == nil {
		return
	}
	if s, ok := a.container.GetLogger().(interface{ Sync() error }); ok {
		// Syncing a console stream fails on some platforms; nothing is lost.
		_ = s.Sync()
	}
}

// reportedError marks a failure the view has already shown to the user.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stderr io.Writer) int {
	a := newApp()
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		msg := err.Error()
		if appErr, ok := apperrors.As(err); ok {
			msg = appErr.UserMessage()
		}
		fmt.Fprintf(stderr, "Error: %s\n", msg)
	}
	return 1
}
