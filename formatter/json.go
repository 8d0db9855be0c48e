package formatter

import (
	"bytes"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/sbond75/uilogger/core"
)

// JSONFormatter renders events as single-line JSON objects, for consumers
// that export the buffer to tooling rather than to humans.
type JSONFormatter struct {
	// TimestampFormat is the layout for the "created_at" field. Empty
	// means RFC3339Nano. Unlike TextFormatter, JSON lines carry one
	// combined timestamp.
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// FormatEvent builds the JSON object manually into the buffer without
// intermediate allocations.
func (f *JSONFormatter) FormatEvent(e core.Event, buf *bytes.Buffer) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}

	buf.WriteString(`{"id":"`)
	buf.WriteString(e.ID.String())
	buf.WriteString(`","created_at":"`)
	buf.Write(e.CreatedAt.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteString(`","level":"`)
	buf.WriteString(e.Level.String())
	buf.WriteString(`","message":"`)
	appendJSONString(buf, e.Message)
	buf.WriteByte('"')

	if e.Err != nil {
		buf.WriteString(`,"error":"`)
		appendJSONString(buf, e.Err.Error())
		buf.WriteByte('"')
	}

	buf.WriteString(`,"source":{"file":"`)
	appendJSONString(buf, e.Metadata.SourceFile)
	buf.WriteString(`","line":`)
	buf.WriteString(strconv.Itoa(e.Metadata.SourceLine))
	buf.WriteByte('}')

	if tags := e.Metadata.Tags; len(tags) > 0 {
		buf.WriteString(`,"tags":[`)
		for i, tag := range tags {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			appendJSONString(buf, tag.Label())
			buf.WriteByte('"')
		}
		buf.WriteByte(']')
	}

	buf.WriteByte('}')
}

// appendJSONString writes s with JSON string escaping, assuming the
// surrounding quotes are written by the caller.
func appendJSONString(buf *bytes.Buffer, s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r < 0x20:
			buf.WriteString(`\u00`)
			const hex = "0123456789abcdef"
			buf.WriteByte(hex[r>>4])
			buf.WriteByte(hex[r&0xf])
		default:
			buf.WriteString(s[i : i+size])
		}
		i += size
	}
}
