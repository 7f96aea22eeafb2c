// ABOUTME: Process-wide structured logger backed by zap
// ABOUTME: Printf-style helpers plus With() for request-scoped fields
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	sugared = base.Sugar()
)

// Init builds the global logger. Verbose switches to the console encoder at debug level,
// quiet raises the level to warn. Calling Init again replaces the previous logger.
func Init(isVerbose, quiet bool) error {
	var cfg zap.Config
	if isVerbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	// MCP speaks JSON-RPC on stdout, so logs always go to stderr
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the global logger. Tests use it with zaptest or observer cores.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	sugared = l.Sugar()
}

// L returns the underlying zap logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// With returns a sugared logger carrying the given key/value pairs
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugared.With(keysAndValues...)
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	get().Infof(format, v...)
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	get().Warnf(format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	get().Errorf(format, v...)
}

// Sync flushes buffered log entries
func Sync() {
	_ = L().Sync()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugared
}
