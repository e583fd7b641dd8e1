package util

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quality-metrics/src/config"
)

// Logger wraps a zap sugared logger behind printf-style helpers
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// NewLogger creates a new logger from config
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Format != "json" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableCaller = !cfg.IncludeCaller
	zcfg.DisableStacktrace = true
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	zcfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
	}

	logger, err := zcfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &Logger{sugar: logger.Sugar(), level: zcfg.Level}, nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugf(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infof(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnf(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorf(msg, args...)
}

// GetLevel returns the current log level as a string
func (l *Logger) GetLevel() string {
	return l.level.String()
}

// Sync flushes buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = &Logger{
		sugar: zap.NewNop().Sugar(),
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
)

// SetDefaultLogger updates the default logger with new configuration
func SetDefaultLogger(cfg config.LoggingConfig) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
	return nil
}

// DefaultLogger returns the package-level logger
func DefaultLogger() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	DefaultLogger().Debug(msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	DefaultLogger().Info(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	DefaultLogger().Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	DefaultLogger().Error(msg, args...)
}
