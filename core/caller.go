package core

import (
	"path/filepath"
	"runtime"
)

// Caller returns the short file name and line of the caller skip frames
// up the stack, for use as an Event's default source location. skip
// follows the runtime.Caller convention: 1 is the caller of Caller.
func Caller(skip int) (file string, line int) {
	_, path, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(path), line
}
