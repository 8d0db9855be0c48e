package logger

import (
	"sync"

	"github.com/sbond75/uilogger/core"
	"github.com/sbond75/uilogger/dispatch"
	"github.com/sbond75/uilogger/formatter"
	"github.com/sbond75/uilogger/sink"
)

// Logger is an append-only in-memory event buffer. Appends are marshaled
// onto the designated context supplied at construction; reads return
// consistent snapshots and are safe from any goroutine.
//
// Everything except the entries slice is immutable after Build, so the
// lock guards exactly one thing: the slice itself.
type Logger struct {
	name      string
	exec      dispatch.Executor
	formatter formatter.EventFormatter
	sinks     []sink.Sink

	mu      sync.RWMutex
	entries []core.Event
}

// Builder provides a fluent API for building Logger instances.
type Builder struct {
	name      string
	exec      dispatch.Executor
	formatter formatter.EventFormatter
	sinks     []sink.Sink
	seed      []core.Event
}

// NewBuilder creates a new logger builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithName sets the logger's identifying label.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithExecutor sets the designated context all appends run on. Without
// one, the logger uses dispatch.Direct and relies on locking alone.
func (b *Builder) WithExecutor(exec dispatch.Executor) *Builder {
	b.exec = exec
	return b
}

// WithFormatter sets the formatter used by Blob.
func (b *Builder) WithFormatter(f formatter.EventFormatter) *Builder {
	b.formatter = f
	return b
}

// WithSinks registers sinks notified once per appended event.
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.sinks = append(b.sinks, sinks...)
	return b
}

// WithEntries seeds the buffer with existing events.
func (b *Builder) WithEntries(events ...core.Event) *Builder {
	b.seed = append(b.seed, events...)
	return b
}

// Build creates the Logger instance.
func (b *Builder) Build() *Logger {
	l := &Logger{
		name:      b.name,
		exec:      b.exec,
		formatter: b.formatter,
		sinks:     b.sinks,
		entries:   make([]core.Event, len(b.seed), len(b.seed)+64),
	}
	copy(l.entries, b.seed)
	if l.exec == nil {
		l.exec = dispatch.Direct{}
	}
	if l.formatter == nil {
		l.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return l
}

// New creates a Logger with the given name and all other options at their
// defaults.
func New(name string) *Logger {
	return NewBuilder().WithName(name).Build()
}

// Name returns the logger's label.
func (l *Logger) Name() string {
	return l.name
}

// Log appends an event at the given level. The source location defaults
// to the call site. Append cannot fail; when called off the designated
// context the append is enqueued asynchronously and the relative order of
// appends racing in from different foreign goroutines is unspecified.
func (l *Logger) Log(level core.Level, message string, err error, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(level, message, err, tags, file, line)
}

// LogAt appends an event with an explicit source location, for callers
// that instrument on behalf of somewhere else.
func (l *Logger) LogAt(level core.Level, message string, err error, tags []core.Tag, sourceFile string, sourceLine int) {
	l.append(level, message, err, tags, sourceFile, sourceLine)
}

// Success appends a success event.
func (l *Logger) Success(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.SuccessLevel, message, nil, tags, file, line)
}

// Debug appends a debug event.
func (l *Logger) Debug(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.DebugLevel, message, nil, tags, file, line)
}

// Info appends an info event.
func (l *Logger) Info(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.InfoLevel, message, nil, tags, file, line)
}

// Warning appends a warning event.
func (l *Logger) Warning(message string, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.WarningLevel, message, nil, tags, file, line)
}

// Error appends an error event with an optional attached error value.
func (l *Logger) Error(message string, err error, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.ErrorLevel, message, err, tags, file, line)
}

// Fatal appends a fatal event with an optional attached error value. It
// records the event and returns; terminating the process is the host's
// decision, not the buffer's.
func (l *Logger) Fatal(message string, err error, tags ...core.Tag) {
	file, line := core.Caller(2)
	l.append(core.FatalLevel, message, err, tags, file, line)
}

func (l *Logger) append(level core.Level, message string, err error, tags []core.Tag, file string, line int) {
	if !l.exec.IsCurrent() {
		// Off the designated context: re-dispatch without waiting. The
		// event is constructed when the closure runs there, so CreatedAt
		// reflects construction on the designated context.
		l.exec.Enqueue(func() {
			l.record(core.NewEvent(level, message, err, tags, file, line))
		})
		return
	}
	l.record(core.NewEvent(level, message, err, tags, file, line))
}

func (l *Logger) record(e core.Event) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	// Sinks run outside the lock so a slow consumer never stalls readers.
	for _, s := range l.sinks {
		s.Consume(e)
	}
}

// Entries returns a snapshot copy of the buffer in append order.
func (l *Logger) Entries() []core.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]core.Event, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}

// Len returns the current number of buffered events.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Blob renders a consistent snapshot of the buffer as one newline-joined
// string, one line per event. An empty buffer yields the empty string.
// The lock is held only for the snapshot copy; formatting runs on the
// copy.
func (l *Logger) Blob() string {
	events := l.Entries()
	if len(events) == 0 {
		return ""
	}

	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)
	for i, e := range events {
		if i > 0 {
			buf.WriteByte('\n')
		}
		l.formatter.FormatEvent(e, buf)
	}
	return buf.String()
}
