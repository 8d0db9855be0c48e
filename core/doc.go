// Package core defines the data model shared across the uilogger module.
//
// It provides the Level type — a closed, ordinal-ordered set of six event
// categories with fixed markers and display colors — the immutable Event
// type that represents a single recorded occurrence, and the Tag
// capability for opaque caller-defined labels.
//
// Events carry a process-unique UUID and their construction timestamp.
// They are plain value structs: the tag slice is copied on construction
// and nothing in this package or in logger ever mutates an Event after
// NewEvent returns.
package core
