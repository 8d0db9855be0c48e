package formatter

import (
	"bytes"
	"sync"

	"github.com/sbond75/uilogger/core"
)

// EventFormatter renders one event into the given buffer, without a
// trailing newline. Joining lines is the caller's concern.
type EventFormatter interface {
	FormatEvent(e core.Event, buf *bytes.Buffer)
}

// Config holds common formatter configuration.
type Config struct {
	// DateFormat is the layout for the date half of a line. Empty means
	// the short date style "1/2/06". Date and time use separate layouts;
	// a combined date+time layout belongs in neither field.
	DateFormat string
	// TimeFormat is the layout for the time half of a line. Empty means
	// the long time style "3:04:05 PM MST".
	TimeFormat string
}

// Layout defaults. Go has no process locale, so these fixed layouts stand
// in for the host's short-date and long-time styles.
const (
	DefaultDateFormat = "1/2/06"
	DefaultTimeFormat = "3:04:05 PM MST"
)

func (c *Config) applyDefaults() {
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns a reset buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool unless it grew unreasonably.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}
