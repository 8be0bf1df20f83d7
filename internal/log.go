package internal

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// ParseLogLevel maps ERROR|WARN|INFO|DEBUG|TRACE to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	case "TRACE":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled printf-style logging on top of zap
type Logger struct {
	level LogLevel
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

// NewLogger creates a JSON logger with the specified level
func NewLogger(level LogLevel) *Logger {
	return newLogger(level, "json")
}

// NewDefaultLogger creates a logger from LOG_LEVEL and LOG_FORMAT (json|console)
func NewDefaultLogger() *Logger {
	return newLogger(ParseLogLevel(os.Getenv("LOG_LEVEL")), os.Getenv("LOG_FORMAT"))
}

// NewFormattedLogger creates a logger with an explicit encoder format (json|console)
func NewFormattedLogger(level LogLevel, format string) *Logger {
	return newLogger(level, format)
}

// NewNopLogger discards everything; used by tests.
func NewNopLogger() *Logger {
	z := zap.NewNop()
	return &Logger{level: LogLevelError, zap: z, sugar: z.Sugar()}
}

func newLogger(level LogLevel, format string) *Logger {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.DisableStacktrace = true

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}
	return &Logger{level: level, zap: z, sugar: z.Sugar()}
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Trace logs at debug level, but only when LOG_LEVEL=TRACE
func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LogLevelTrace {
		l.sugar.Debugf("[TRACE] "+format, args...)
	}
}

// With returns a child logger carrying structured fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	z := l.zap.With(fields...)
	return &Logger{level: l.level, zap: z, sugar: z.Sugar()}
}

// Zap exposes the underlying logger for libraries that want one.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() LogLevel {
	return l.level
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Global logger instance
var DefaultLogger = NewDefaultLogger()
