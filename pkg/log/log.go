// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package log is the process-wide reporting substrate. Until Initialize
// has been called, fatal reports fall back to a raw stderr write; after
// it, all output goes through the leveled, scoped loggers below.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	LevelTrace   = "trace"
	LevelDebug   = "debug"
	LevelVerbose = "verbose"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelError   = "error"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
	LogLevelTrace
	LogLevelNone
)

var levelTags = map[LogLevel]string{
	LogLevelError:   "   ERROR",
	LogLevelWarn:    "    WARN",
	LogLevelInfo:    "    INFO",
	LogLevelVerbose: " VERBOSE",
	LogLevelDebug:   "   DEBUG",
	LogLevelTrace:   "   TRACE",
}

func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case LevelError:
		return LogLevelError
	case LevelWarn:
		return LogLevelWarn
	case LevelInfo:
		return LogLevelInfo
	case LevelVerbose:
		return LogLevelVerbose
	case LevelDebug:
		return LogLevelDebug
	case LevelTrace:
		return LogLevelTrace
	default:
		return LogLevelNone
	}
}

var (
	mu             sync.Mutex
	initialized    bool
	globalLogLevel = LogLevelInfo
	showTimestamps bool
	stdout         io.Writer = os.Stdout
	stderr         io.Writer = os.Stderr
	exitFunc                 = os.Exit
)

// Initialize brings up structured reporting. It must be called exactly
// once, before locale resolution, so that later startup failures report
// through the structured path instead of raw stderr writes. Repeated
// calls are no-ops.
func Initialize() {
	mu.Lock()
	defer mu.Unlock()
	initialized = true
}

// Initialized reports whether structured reporting is available.
func Initialized() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

// SetLogLevel adjusts the global threshold for loggers without an
// explicit override.
func SetLogLevel(levelStr string) {
	mu.Lock()
	defer mu.Unlock()
	globalLogLevel = ParseLogLevel(levelStr)
	if globalLogLevel == LogLevelNone {
		globalLogLevel = LogLevelInfo
	}
}

// SetTimestamps toggles timestamp prefixes on log lines.
func SetTimestamps(show bool) {
	mu.Lock()
	defer mu.Unlock()
	showTimestamps = show
}

// SetOutput redirects both output streams; tests use this to capture
// log lines.
func SetOutput(out, err io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	stdout = out
	stderr = err
}

// Logger is a scoped logger. An empty prefix produces unscoped lines.
type Logger struct {
	prefix     string
	level      LogLevel
	isOverride bool
}

// NewLogger creates a logger for one component scope. An empty logLevel
// follows the global level; anything else is a per-scope override.
func NewLogger(prefix, logLevel string) *Logger {
	level := ParseLogLevel(logLevel)
	if logLevel == "" || level == LogLevelNone {
		return &Logger{prefix: prefix}
	}
	return &Logger{prefix: prefix, level: level, isOverride: true}
}

// NewScopedLogger is an alias of NewLogger kept for call-site clarity.
var NewScopedLogger = NewLogger

func (l *Logger) threshold() LogLevel {
	if l.isOverride {
		return l.level
	}
	mu.Lock()
	defer mu.Unlock()
	return globalLogLevel
}

func (l *Logger) output(messageLevel LogLevel, format string, args ...interface{}) {
	if messageLevel > l.threshold() {
		return
	}
	message := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		message = fmt.Sprintf("%s %s", l.prefix, message)
	}
	message = fmt.Sprintf("%s %s", levelTags[messageLevel], message)

	mu.Lock()
	defer mu.Unlock()
	if showTimestamps {
		message = fmt.Sprintf("%s %s", time.Now().Format("2006-01-02 15:04:05"), message)
	}
	w := stdout
	if messageLevel <= LogLevelWarn {
		w = stderr
	}
	fmt.Fprintln(w, message)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.output(LogLevelTrace, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.output(LogLevelDebug, format, args...)
}

func (l *Logger) Verbose(format string, args ...interface{}) {
	l.output(LogLevelVerbose, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.output(LogLevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.output(LogLevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.output(LogLevelError, format, args...)
}

// Fatal reports an unrecoverable condition and terminates the process
// with exit code 1. Before Initialize it degrades to a raw stderr write,
// since the structured path is not yet guaranteed to exist.
func (l *Logger) Fatal(format string, args ...interface{}) {
	mu.Lock()
	up := initialized
	mu.Unlock()
	if up {
		message := fmt.Sprintf(format, args...)
		if l.prefix != "" {
			message = fmt.Sprintf("%s %s", l.prefix, message)
		}
		mu.Lock()
		fmt.Fprintf(stderr, "   FATAL %s\n", message)
		mu.Unlock()
	} else {
		mu.Lock()
		fmt.Fprintf(stderr, "FATAL: ")
		fmt.Fprintf(stderr, format, args...)
		fmt.Fprintln(stderr)
		mu.Unlock()
	}
	exitFunc(1)
}
