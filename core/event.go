package core

import (
	"time"

	"github.com/google/uuid"
)

// Metadata carries the call-site information recorded with an Event.
type Metadata struct {
	SourceFile string
	SourceLine int
	Tags       []Tag
}

// Event is one recorded log occurrence. Events are immutable once
// constructed: NewEvent copies the tag slice, and the Logger hands out
// value copies, so no field observed by a consumer ever changes.
type Event struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Level     Level
	Message   string
	Err       error
	Metadata  Metadata
}

// NewEvent constructs an Event with a fresh process-unique ID and the
// current time as CreatedAt. Construction cannot fail: err and tags may
// be nil, and message may be empty.
func NewEvent(level Level, message string, err error, tags []Tag, sourceFile string, sourceLine int) Event {
	var owned []Tag
	if len(tags) > 0 {
		owned = make([]Tag, len(tags))
		copy(owned, tags)
	}
	return Event{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Level:     level,
		Message:   message,
		Err:       err,
		Metadata: Metadata{
			SourceFile: sourceFile,
			SourceLine: sourceLine,
			Tags:       owned,
		},
	}
}
