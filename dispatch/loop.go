package dispatch

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Loop is an Executor backed by a dedicated goroutine draining a FIFO
// queue. Functions enqueued from the same goroutine run in enqueue order;
// functions enqueued concurrently from different goroutines race for
// queue slots and have no guaranteed relative order.
type Loop struct {
	queue chan func()
	done  chan struct{}
	goid  atomic.Uint64

	mu     sync.Mutex
	closed bool
}

// NewLoop starts the loop goroutine and returns once it is running.
func NewLoop() *Loop {
	l := &Loop{
		queue: make(chan func(), 1024),
		done:  make(chan struct{}),
	}
	started := make(chan struct{})
	go l.run(started)
	<-started
	return l
}

func (l *Loop) run(started chan struct{}) {
	l.goid.Store(curGoroutineID())
	close(started)
	defer close(l.done)
	for fn := range l.queue {
		fn()
	}
}

// IsCurrent reports whether the caller is running on the loop goroutine.
func (l *Loop) IsCurrent() bool {
	return curGoroutineID() == l.goid.Load()
}

// Enqueue schedules fn onto the loop goroutine. After Close it is a
// no-op. Enqueue never waits for fn to run, though it can briefly block
// if the queue is at capacity while the loop drains.
func (l *Loop) Enqueue(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.queue <- fn
}

// Close stops the loop after running everything already enqueued and
// waits for the loop goroutine to exit. Close is idempotent. It must not
// be called from the loop goroutine itself.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()
	<-l.done
}

var goroutineSpace = []byte("goroutine ")

// curGoroutineID extracts the current goroutine's id from the header of a
// runtime.Stack dump ("goroutine N [running]:"). The runtime exposes no
// direct accessor; this parse is the established workaround.
func curGoroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, goroutineSpace)
	i := bytes.IndexByte(buf, ' ')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseUint(string(buf[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
