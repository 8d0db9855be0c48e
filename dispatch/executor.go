package dispatch

// Executor abstracts the host application's designated execution context —
// the single context on which all buffer mutations must run (the UI or
// main loop in an interactive application).
type Executor interface {
	// IsCurrent reports whether the calling goroutine is the designated
	// context.
	IsCurrent() bool

	// Enqueue schedules fn to run on the designated context. It must not
	// block the caller waiting for fn to complete.
	Enqueue(fn func())
}

// Direct is the trivial Executor: every goroutine counts as the
// designated context and Enqueue runs fn inline. It is the default for
// loggers that rely on locking alone, and the synchronous fake for tests.
type Direct struct{}

// IsCurrent always returns true.
func (Direct) IsCurrent() bool { return true }

// Enqueue runs fn immediately on the calling goroutine.
func (Direct) Enqueue(fn func()) { fn() }
