// Package formatter renders events into text.
//
// TextFormatter produces the canonical human-readable line used by the
// logger's Blob rendering; JSONFormatter produces machine-readable lines
// for export. Both implement EventFormatter and format into a
// caller-provided bytes.Buffer so that multi-line renderings build one
// string without per-line allocations.
package formatter
