package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pdf-summary-client/internal/config"
)

type syncLogger struct {
	syncs int
	err   error
}

func (l *syncLogger) Info(msg string, fields ...interface{})             {}
func (l *syncLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *syncLogger) Debug(msg string, fields ...interface{})            {}
func (l *syncLogger) Warn(msg string, fields ...interface{})             {}

func (l *syncLogger) Sync() error {
	l.syncs++
	return l.err
}

func TestApp_CloseSyncsLogger(t *testing.T) {
	logger := &syncLogger{err: errors.New("sync /dev/stderr: invalid argument")}
	a := newApp()
	a.container = &config.Container{Logger: logger}

	a.close()

	assert.Equal(t, 1, logger.syncs)
}

func TestApp_CloseBeforeLoad(t *testing.T) {
	a := newApp()
	assert.NotPanics(t, a.close)
}
