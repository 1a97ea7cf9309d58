// Package logging provides the structured logger used by the CLI
// harness; the kernel, PSA driver and bridge do not log. It wraps go.uber.org/zap behind a small interface so
// that the numeric core never depends on zap directly.
package logging

import "go.uber.org/zap"

// Logger is the structured logging interface used throughout hmse.
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Close() error
}

// NoOpLogger discards everything; used in tests and as a safe zero value.
type NoOpLogger struct{}

func (n *NoOpLogger) Info(msg string, fields ...interface{})             {}
func (n *NoOpLogger) Error(msg string, err error, fields ...interface{}) {}
func (n *NoOpLogger) Debug(msg string, fields ...interface{})            {}
func (n *NoOpLogger) Warn(msg string, fields ...interface{})             {}
func (n *NoOpLogger) Close() error                                       { return nil }

// NewNop returns a Logger that discards all output.
func NewNop() Logger { return &NoOpLogger{} }

type logger struct {
	zl    *zap.Logger
	sugar *zap.SugaredLogger
}

// New creates a logger instance. development selects human-readable,
// colorized output; otherwise JSON production output.
func New(development bool) (Logger, error) {
	var zl *zap.Logger
	var err error
	if development {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &logger{zl: zl, sugar: zl.Sugar()}, nil
}

// NewWithConfig builds a logger from a caller-supplied zap.Config, for
// callers that need a custom sink or level (e.g. the PSA CLI harness
// writing to a replication-scoped log file).
func NewWithConfig(config zap.Config) (Logger, error) {
	zl, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &logger{zl: zl, sugar: zl.Sugar()}, nil
}

func (l *logger) Info(msg string, fields ...interface{}) {
	l.sugar.Infow(msg, fields...)
}

func (l *logger) Error(msg string, err error, fields ...interface{}) {
	allFields := append([]interface{}{"error", err}, fields...)
	l.sugar.Errorw(msg, allFields...)
}

func (l *logger) Debug(msg string, fields ...interface{}) {
	l.sugar.Debugw(msg, fields...)
}

func (l *logger) Warn(msg string, fields ...interface{}) {
	l.sugar.Warnw(msg, fields...)
}

// Close flushes buffered log entries. Safe to call on a logger backed
// by stdout/stderr, where Sync can return a harmless error on some
// platforms; callers that care should check it themselves.
func (l *logger) Close() error {
	return l.zl.Sync()
}
