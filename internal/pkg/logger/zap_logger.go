package logger

import (
	"fmt"

	"github.com/buccusa/buccusa-api/internal/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is an implementation of Logger backed by zap's production JSON encoder.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a zap production logger writing to stderr at the given level.
func NewZapLogger(level string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case config.LogLevelDebug:
		return zapcore.DebugLevel
	case config.LogLevelWarning:
		return zapcore.WarnLevel
	case config.LogLevelError:
		return zapcore.ErrorLevel
	case config.LogLevelCritical:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// Info logs an informational message.
func (l *ZapLogger) Info(args ...interface{}) {
	msg, kv := splitArgs(args...)
	l.sugar.Infow(msg, kv...)
}

// Warn logs a warning message.
func (l *ZapLogger) Warn(args ...interface{}) {
	msg, kv := splitArgs(args...)
	l.sugar.Warnw(msg, kv...)
}

// Error logs an error message.
func (l *ZapLogger) Error(args ...interface{}) {
	msg, kv := splitArgs(args...)
	l.sugar.Errorw(msg, kv...)
}

// Fatal logs a fatal message and exits.
func (l *ZapLogger) Fatal(args ...interface{}) {
	msg, kv := splitArgs(args...)
	l.sugar.Fatalw(msg, kv...)
}

// Panic logs a panic message and panics.
func (l *ZapLogger) Panic(args ...interface{}) {
	msg, kv := splitArgs(args...)
	l.sugar.Panicw(msg, kv...)
}
