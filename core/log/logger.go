// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: structured, leveled logging with
//              context fields and hiext error integration, written through a
//              zerolog backend in JSON or console format.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation on top of zerolog

package log

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	hixerror "github.com/msto63/hiext/core/error"
)

// Fields holds structured key/value pairs attached to a log entry
type Fields map[string]interface{}

// Field creates a single-entry Fields value
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatConsole outputs human-readable lines
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return FormatJSON, nil
	case "console", "text", "pretty":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{Input: format, Type: "format"}
	}
}

// Logger represents a structured logger with contextual information
type Logger struct {
	zl    zerolog.Logger
	level Level
	name  string
}

// Config represents logger configuration
type Config struct {
	Level   Level
	Format  Format
	Output  io.Writer
	Name    string
	NoColor bool
}

// New creates a logger writing JSON to stderr at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	if config.Format == FormatConsole {
		output = zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    config.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	zl := zerolog.New(output).Level(config.Level.zerolog()).With().Timestamp().Logger()
	if config.Name != "" {
		zl = zl.With().Str("logger", config.Name).Logger()
	}

	return &Logger{zl: zl, level: config.Level, name: config.Name}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: LevelOff}
}

// WithLevel returns a copy of the logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{zl: l.zl.Level(level.zerolog()), level: level, name: l.name}
}

// WithName returns a copy of the logger with a component name
func (l *Logger) WithName(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("logger", name).Logger(), level: l.level, name: name}
}

// WithField returns a copy of the logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy of the logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{zl: l.zl.With().Fields(map[string]interface{}(fields)).Logger(), level: l.level, name: l.name}
}

// Trace logs a trace message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// DebugWithErr logs a debug message with an error object
func (l *Logger) DebugWithErr(message string, err error, fields ...Fields) {
	l.log(LevelDebug, message, err, fields...)
}

// LogError logs hiext errors at warn level with their code, operation and
// details as fields. Any other error is logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var hixErr *hixerror.Error
	if !errors.As(err, &hixErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{"error_code": hixErr.Code().String()}
	if op := hixErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range hixErr.Details() {
		fields["error_"+k] = v
	}
	l.log(LevelWarn, err.Error(), err, fields)
}

// IsLevelEnabled reports whether messages at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level != LevelOff && level >= l.level
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	event := l.zl.WithLevel(level.zerolog())
	if event == nil {
		return
	}
	if err != nil {
		event = event.Err(err)
	}
	for _, set := range fields {
		if len(set) > 0 {
			event = event.Fields(map[string]interface{}(set))
		}
	}
	event.Msg(message)
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
