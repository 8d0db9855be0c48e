package logger

import "github.com/sbond75/uilogger/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	SuccessLevel = core.SuccessLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
)

// ParseLevel converts a string to a Level.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
