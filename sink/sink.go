package sink

import (
	"io"
	"sync"

	"github.com/sbond75/uilogger/core"
	"github.com/sbond75/uilogger/formatter"
)

// Sink receives each event right after it lands in a logger's buffer.
// With a serializing executor all Consume calls arrive on the designated
// context; with the Direct executor they may arrive concurrently, so
// implementations guard their own state.
type Sink interface {
	Consume(e core.Event)
}

// WriterSink formats each event as one line and writes it to an
// io.Writer. Writes are serialized by a mutex held only for the actual
// Write call; formatting happens into a pooled buffer beforehand.
type WriterSink struct {
	mu        sync.Mutex
	w         io.Writer
	formatter formatter.EventFormatter
}

// NewWriterSink creates a sink writing to w. A nil f means the default
// text formatter.
func NewWriterSink(w io.Writer, f formatter.EventFormatter) *WriterSink {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	return &WriterSink{w: w, formatter: f}
}

// Consume writes one formatted line for e. Write errors are dropped: a
// sink failure must never surface as a logging failure.
func (s *WriterSink) Consume(e core.Event) {
	buf := formatter.GetBuffer()
	s.formatter.FormatEvent(e, buf)
	buf.WriteByte('\n')

	s.mu.Lock()
	_, _ = s.w.Write(buf.Bytes())
	s.mu.Unlock()

	formatter.PutBuffer(buf)
}
