package formatter

import (
	"bytes"
	"strconv"

	"github.com/sbond75/uilogger/core"
)

// TextFormatter renders events as human-readable lines:
//
//	<date> <time> <marker>: <message> (File: <file>@<line>)(Error: <description>)
//
// The error suffix appears only when the event carries an error, directly
// after the file suffix with no separating space.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a text formatter, filling in default layouts.
func NewTextFormatter(cfg Config) *TextFormatter {
	cfg.applyDefaults()
	return &TextFormatter{Config: cfg}
}

// FormatEvent writes one formatted line for e into buf.
func (f *TextFormatter) FormatEvent(e core.Event, buf *bytes.Buffer) {
	buf.Write(e.CreatedAt.AppendFormat(buf.AvailableBuffer(), f.DateFormat))
	buf.WriteByte(' ')
	buf.Write(e.CreatedAt.AppendFormat(buf.AvailableBuffer(), f.TimeFormat))
	buf.WriteByte(' ')
	buf.WriteString(e.Level.Marker())
	buf.WriteString(": ")
	buf.WriteString(e.Message)
	buf.WriteString(" (File: ")
	buf.WriteString(e.Metadata.SourceFile)
	buf.WriteByte('@')
	buf.WriteString(strconv.Itoa(e.Metadata.SourceLine))
	buf.WriteByte(')')
	if e.Err != nil {
		buf.WriteString("(Error: ")
		buf.WriteString(e.Err.Error())
		buf.WriteByte(')')
	}
}
