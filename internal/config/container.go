package config

import (
	"pdf-summary-client/internal/domain"
	"pdf-summary-client/internal/infra/summarizer"
	"pdf-summary-client/internal/service"
	"pdf-summary-client/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     domain.Config
	Logger     domain.Logger
	Summarizer *summarizer.Client
	Formatter  *service.ResultFormatter
}

// NewContainer creates a new dependency injection container
func NewContainer(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel())

	return &Container{
		Config:     config,
		Logger:     appLogger,
		Summarizer: summarizer.NewClient(config, appLogger),
		Formatter:  service.NewResultFormatter(config.GetLocale()),
	}
}

// NewWorkflow creates an upload workflow that drives view.
func (c *Container) NewWorkflow(view domain.View) *service.UploadWorkflow {
	return service.NewUploadWorkflow(
		c.Summarizer,
		c.Summarizer,
		view,
		c.Formatter,
		c.Config.GetMaxFileSize(),
		c.Logger,
	)
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
