package slogbridge

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/sbond75/uilogger/core"
	"github.com/sbond75/uilogger/logger"
)

// Handler implements slog.Handler on top of an event buffer, so host code
// that already logs through log/slog lands its records in the buffer
// alongside direct appends.
type Handler struct {
	log   *logger.Logger
	level slog.Level
	tags  []core.Tag
	group string
}

// New creates a slog.Handler appending to log. Records below level are
// dropped; the buffer itself has no level filtering, so the gate lives
// here at the boundary.
func New(log *logger.Logger, level slog.Level) *Handler {
	return &Handler{log: log, level: level}
}

// Enabled reports whether records at the given level are appended.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle converts a slog.Record into an event. Attrs become tags; the
// first error-valued attr becomes the event's attached error instead.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	tags := make([]core.Tag, 0, len(h.tags)+record.NumAttrs())
	tags = append(tags, h.tags...)

	var cause error
	record.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Any().(error); ok && cause == nil {
			cause = err
			return true
		}
		tags = append(tags, attrTag{group: h.group, attr: a})
		return true
	})

	file, line := recordSource(record)
	h.log.LogAt(levelOf(record.Level), record.Message, cause, tags, file, line)
	return nil
}

// WithAttrs returns a Handler whose records carry the extra attrs as tags.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	tags := make([]core.Tag, len(h.tags), len(h.tags)+len(attrs))
	copy(tags, h.tags)
	for _, a := range attrs {
		tags = append(tags, attrTag{group: h.group, attr: a})
	}
	return &Handler{log: h.log, level: h.level, tags: tags, group: h.group}
}

// WithGroup returns a Handler that prefixes subsequent attr tags with the
// group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{log: h.log, level: h.level, tags: h.tags, group: group}
}

// attrTag exposes a slog attr through the Tag capability.
type attrTag struct {
	group string
	attr  slog.Attr
}

// Label renders the attr as "key=value", group-qualified when grouped.
func (t attrTag) Label() string {
	key := t.attr.Key
	if t.group != "" {
		key = t.group + "." + key
	}
	return key + "=" + t.attr.Value.String()
}

func levelOf(l slog.Level) core.Level {
	switch {
	case l < slog.LevelInfo:
		return core.DebugLevel
	case l < slog.LevelWarn:
		return core.InfoLevel
	case l < slog.LevelError:
		return core.WarningLevel
	default:
		return core.ErrorLevel
	}
}

func recordSource(record slog.Record) (string, int) {
	if record.PC == 0 {
		return "unknown", 0
	}
	frames := runtime.CallersFrames([]uintptr{record.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "unknown", 0
	}
	return filepath.Base(frame.File), frame.Line
}
