// Copyright 2026 The libmicrohttpd-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides a structured, leveled logging interface for
// libmicrohttpd-go. It defines a Logger interface implementable by any
// backend (the built-in DefaultLogger, slog, zap, ...) and a Formatter
// interface for extensible output formats.
package logging

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is used for general informational messages.
	LevelInfo
	// LevelWarn is used for warnings that indicate potential issues.
	LevelWarn
	// LevelError is used for messages indicating failures.
	LevelError
	// LevelSilent disables all logging output.
	LevelSilent
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel.
// Unrecognized strings parse as LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat represents the output format for log messages.
type LogFormat int

const (
	// FormatText outputs human-readable text logs.
	FormatText LogFormat = iota
	// FormatJSON outputs structured JSON logs.
	FormatJSON
)

// String returns the string representation of a log format.
func (f LogFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseLogFormat parses a string into a LogFormat.
// Unrecognized strings parse as FormatText.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the interface for leveled, structured logging.
type Logger interface {
	// Debug logs a message at debug level with printf-style formatting.
	Debug(format string, args ...interface{})
	// Info logs a message at info level with printf-style formatting.
	Info(format string, args ...interface{})
	// Warn logs a message at warn level with printf-style formatting.
	Warn(format string, args ...interface{})
	// Error logs a message at error level with printf-style formatting.
	Error(format string, args ...interface{})

	// GetLevel returns the current minimum log level.
	GetLevel() LogLevel
	// Silent reports whether debug output is suppressed.
	Silent() bool

	// WithField returns a new Logger with the key-value pair attached
	// to every entry.
	WithField(key string, value interface{}) Logger
	// WithFields returns a new Logger with the fields attached to
	// every entry.
	WithFields(fields map[string]interface{}) Logger
}

// Default returns a new info-level Logger.
func Default() Logger {
	return NewLogger(false)
}

// EnsureLogger returns l if non-nil, otherwise a default logger. Use as a
// fallback when no logger was configured.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
