package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewEvent_Fields(t *testing.T) {
	before := time.Now()
	cause := errors.New("boom")
	e := NewEvent(ErrorLevel, "it broke", cause, []Tag{StringTag("net")}, "main.go", 42)
	after := time.Now()

	if e.Level != ErrorLevel {
		t.Errorf("Level = %v, want %v", e.Level, ErrorLevel)
	}
	if e.Message != "it broke" {
		t.Errorf("Message = %q, want %q", e.Message, "it broke")
	}
	if e.Err != cause {
		t.Errorf("Err = %v, want %v", e.Err, cause)
	}
	if e.Metadata.SourceFile != "main.go" || e.Metadata.SourceLine != 42 {
		t.Errorf("source = %s@%d, want main.go@42", e.Metadata.SourceFile, e.Metadata.SourceLine)
	}
	if e.CreatedAt.Before(before) || e.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want within [%v, %v]", e.CreatedAt, before, after)
	}
	if len(e.Metadata.Tags) != 1 || e.Metadata.Tags[0].Label() != "net" {
		t.Errorf("Tags = %v, want [net]", Labels(e.Metadata.Tags))
	}
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		e := NewEvent(InfoLevel, "", nil, nil, "x.go", 1)
		id := e.ID.String()
		if seen[id] {
			t.Fatalf("duplicate event ID %s", id)
		}
		seen[id] = true
	}
}

func TestNewEvent_CopiesTags(t *testing.T) {
	tags := []Tag{StringTag("a"), StringTag("b")}
	e := NewEvent(DebugLevel, "msg", nil, tags, "x.go", 1)

	// Mutating the caller's slice must not be visible through the event.
	tags[0] = StringTag("mutated")
	if got := e.Metadata.Tags[0].Label(); got != "a" {
		t.Errorf("event tag after caller mutation = %q, want %q", got, "a")
	}
}

func TestCaller(t *testing.T) {
	file, line := Caller(1)
	if file != "event_test.go" {
		t.Errorf("Caller file = %q, want event_test.go", file)
	}
	if line <= 0 {
		t.Errorf("Caller line = %d, want > 0", line)
	}
}

func TestLabels(t *testing.T) {
	if Labels(nil) != nil {
		t.Error("Labels(nil) should be nil")
	}
	got := Labels([]Tag{StringTag("x"), StringTag("y")})
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("Labels = %v, want [x y]", got)
	}
}
