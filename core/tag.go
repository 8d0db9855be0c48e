package core

// Tag is an opaque caller-defined label attached to an Event. The core
// only ever calls Label; grouping and filtering by tag is left to
// consumers of the buffer.
type Tag interface {
	Label() string
}

// StringTag is the trivial Tag implementation for callers that have no
// richer tag type of their own.
type StringTag string

// Label returns the tag text.
func (t StringTag) Label() string { return string(t) }

// Labels extracts the labels of tags in order.
func Labels(tags []Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = t.Label()
	}
	return labels
}
