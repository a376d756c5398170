// Package logger wraps zap to provide structured logging for the service.
package logger

import (
	"go.uber.org/zap"
)

// Logger holds the underlying zap logger.
type Logger struct {
	// Log is the configured zap logger. It is a no-op until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger, safe to use before Init.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init configures the logger at the given level ("Debug", "Info", ...).
// It replaces the no-op logger with a production zap logger.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = log
	return nil
}
