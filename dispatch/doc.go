// Package dispatch models the "designated context" of an interactive
// host: the one execution context on which all log-buffer mutations are
// serialized.
//
// The Executor interface splits the host's platform rule into two
// injectable primitives — an "am I on the designated context" predicate
// and an asynchronous "enqueue onto it" operation. Direct collapses both
// into inline execution for tests and for hosts that do not care about
// context affinity; Loop provides a real serial context owned by a
// background goroutine. Hosts with their own event loop (a TUI
// application, for example) can implement Executor on top of it instead.
package dispatch
