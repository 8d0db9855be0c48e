package logger

import (
	"sync"

	"github.com/sbond75/uilogger/core"
)

var (
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the process-wide shared logger, creating it on first
// use. All references observe the same underlying buffer. Prefer passing
// a Logger explicitly; the default exists for code with no better place
// to thread one through.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = New("default")
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger. Tests use this to
// substitute an isolated instance instead of sharing process state.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Package-level convenience functions using the default logger. Each
// captures its own call site so source locations point at the caller,
// not at this file.

// Success appends a success event to the default logger.
func Success(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.SuccessLevel, message, nil, tags, file, line)
}

// Debug appends a debug event to the default logger.
func Debug(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.DebugLevel, message, nil, tags, file, line)
}

// Info appends an info event to the default logger.
func Info(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.InfoLevel, message, nil, tags, file, line)
}

// Warning appends a warning event to the default logger.
func Warning(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.WarningLevel, message, nil, tags, file, line)
}

// Error appends an error event to the default logger.
func Error(message string, err error, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.ErrorLevel, message, err, tags, file, line)
}

// Fatal appends a fatal event to the default logger.
func Fatal(message string, err error, tags ...core.Tag) {
	file, line := core.Caller(2)
	Default().LogAt(core.FatalLevel, message, err, tags, file, line)
}

// Blob renders the default logger's buffer.
func Blob() string {
	return Default().Blob()
}

// Entries returns a snapshot of the default logger's buffer.
func Entries() []core.Event {
	return Default().Entries()
}
