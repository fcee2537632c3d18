// Package logger wraps zap construction for the client and the dev server.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger carries the configured zap logger.
type Logger struct {
	// Log is the underlying zap logger, nil until Init succeeds.
	Log *zap.Logger
}

// New returns an uninitialized Logger.
func New() *Logger {
	return &Logger{}
}

// Init configures Log at the given level ("debug", "info", ...), writing to
// stderr. Used by the dev server.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = logger
	return nil
}

// InitFile configures Log at the given level writing to path. The TUI owns
// the terminal, so the client must not log to stdout or stderr. An empty
// path disables logging entirely (a no-op logger is installed).
func (l *Logger) InitFile(level, path string) error {
	if path == "" {
		l.Log = zap.NewNop()
		return nil
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = logger
	return nil
}
