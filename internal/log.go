package internal

import (
	"log"
	"os"
)

// LogLevel selects how much pipeline progress gets written out
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var logPrefixes = [...]string{"[ERROR] ", "[WARN] ", "[INFO] ", "[DEBUG] ", "[TRACE] "}

var logLevelNames = map[string]LogLevel{
	"ERROR": LogLevelError,
	"WARN":  LogLevelWarn,
	"INFO":  LogLevelInfo,
	"DEBUG": LogLevelDebug,
	"TRACE": LogLevelTrace,
}

// ParseLogLevel maps a LOG_LEVEL value to its LogLevel. Unknown or empty
// values fall back to LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	if level, ok := logLevelNames[s]; ok {
		return level
	}
	return LogLevelInfo
}

// Logger writes leveled progress lines for an analysis run
type Logger struct {
	level LogLevel
}

// NewLogger creates a logger that emits messages at or below level
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger reads LOG_LEVEL from the environment, defaulting to INFO
func NewDefaultLogger() *Logger {
	return &Logger{level: ParseLogLevel(os.Getenv("LOG_LEVEL"))}
}

func (l *Logger) logf(at LogLevel, format string, args ...interface{}) {
	if l.level >= at {
		log.Printf(logPrefixes[at]+format, args...)
	}
}

// Error logs failures that abort the run
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

// Warn logs recoverable problems with the input data
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

// Info logs stage boundaries and subset counts
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

// Debug logs per-stage internals
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

// Trace logs row-level detail
func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

// GetLevel returns the configured level
func (l *Logger) GetLevel() LogLevel {
	return l.level
}
