// Package logger is the public API of uilogger. Most users only need to
// import this package.
//
// A Logger owns an ordered, append-only, in-memory sequence of events for
// the lifetime of the process — there is no rotation, no size limit, and
// no close. Callers append leveled, tagged events from any goroutine;
// readers take consistent snapshots via Entries or render the whole
// buffer as one newline-joined string via Blob.
//
// Two layers keep the buffer safe. First, every append runs on the
// designated context modeled by dispatch.Executor: an append issued from
// a foreign goroutine is re-dispatched there asynchronously, so appends
// racing in from several foreign goroutines carry no relative-order
// guarantee between each other. Second, a lock around the entries slice
// keeps snapshots whole — a reader never observes a partial append.
//
// Construction uses the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("session").
//	    WithExecutor(loop).
//	    WithSinks(sink.NewWriterSink(os.Stderr, nil)).
//	    Build()
//
//	log.Info("ready", core.StringTag("boot"))
//	log.Error("request failed", err)
//	fmt.Println(log.Blob())
//
// A lazily created process-wide default instance backs the package-level
// Success, Debug, Info, Warning, Error and Fatal functions; tests swap it
// out with SetDefault.
package logger
