package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"pdf-summary-client/internal/handler"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload page to a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringP("port", "p", "", "port for the web front end (default 8080)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	container := a.container
	cfg := container.GetConfig()
	logger := container.GetLogger()

	hub := handler.NewProgressHub(cfg.GetAllowedOrigins(), logger)
	view := handler.NewWebView(hub)
	workflow := container.NewWorkflow(view)
	workflowHandler := handler.NewWorkflowHandler(
		workflow,
		view,
		cfg.GetMaxFileSize(),
		cfg.GetMaxDownloadSize(),
		logger,
	)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           handler.NewRouter(workflowHandler, hub, cfg.GetAllowedOrigins()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "address", server.Addr, "summarizer", cfg.GetBaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to start", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	workflow.Reset()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	logger.Info("Server exited")
	return nil
}
