// Package log provides the application logger.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	logger = newLogger(false)
}

func newLogger(debug bool) *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true

	if !debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	l, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l
}

// Init replaces the logger, enabling debug output if requested.
func Init(debug bool) {
	logger = newLogger(debug)
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return logger
}

// SetLogger sets the global logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}
