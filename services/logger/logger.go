package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps LOG_LEVEL values; unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface trên zap
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger tạo logger production của zap ở mức level
func NewDefaultLogger(level Level) *DefaultLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}
	return &DefaultLogger{sugar: z.Sugar()}
}

// NewNopLogger discards everything.
func NewNopLogger() *DefaultLogger {
	return &DefaultLogger{sugar: zap.NewNop().Sugar()}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Sync flushes buffered entries.
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}
