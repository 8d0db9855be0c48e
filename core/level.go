package core

import "strings"

// Level identifies the category of an Event.
//
// The set is closed: exactly these six values exist, and their declared
// order is part of the public contract. Consumers index marker and color
// tables by ordinal, so the order must never be reshuffled — it is the
// declaration order below, not a severity ranking.
type Level int8

const (
	// SuccessLevel for positive completion messages
	SuccessLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable failure messages
	FatalLevel
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case SuccessLevel:
		return "success"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return "unknown"
	}
}

// Marker returns the fixed single-glyph marker for the level, used when
// rendering an event as a text line.
func (l Level) Marker() string {
	switch l {
	case SuccessLevel:
		return "✅"
	case DebugLevel:
		return "🐞"
	case InfoLevel:
		return "ℹ️"
	case WarningLevel:
		return "⚠️"
	case ErrorLevel:
		return "🚨"
	case FatalLevel:
		return "☠️"
	default:
		return "❓"
	}
}

// Color returns the fixed display color name for the level. The core never
// interprets it; presentation consumers map it onto their own color space.
func (l Level) Color() string {
	switch l {
	case SuccessLevel:
		return "green"
	case DebugLevel:
		return "purple"
	case InfoLevel:
		return "blue"
	case WarningLevel:
		return "yellow"
	case ErrorLevel:
		return "red"
	case FatalLevel:
		return "black"
	default:
		return "gray"
	}
}

// Levels returns all six levels in declaration order.
func Levels() []Level {
	return []Level{SuccessLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel}
}

// ParseLevel converts a string to a Level. Unrecognized input maps to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "success":
		return SuccessLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}
