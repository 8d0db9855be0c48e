package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirect(t *testing.T) {
	var d Direct
	assert.True(t, d.IsCurrent())

	ran := false
	d.Enqueue(func() { ran = true })
	assert.True(t, ran, "Direct.Enqueue should run inline")
}

func TestLoop_IsCurrent(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	assert.False(t, l.IsCurrent(), "test goroutine is not the loop")

	result := make(chan bool, 1)
	l.Enqueue(func() { result <- l.IsCurrent() })

	select {
	case onLoop := <-result:
		assert.True(t, onLoop, "enqueued fn runs on the loop goroutine")
	case <-time.After(time.Second):
		t.Fatal("enqueued fn never ran")
	}
}

func TestLoop_SingleProducerOrder(t *testing.T) {
	l := NewLoop()

	const n = 500
	var got []int
	for i := 0; i < n; i++ {
		i := i
		l.Enqueue(func() { got = append(got, i) })
	}
	l.Close()

	require.Len(t, got, n)
	for i := 0; i < n; i++ {
		require.Equal(t, i, got[i], "fn enqueued at position %d ran out of order", i)
	}
}

func TestLoop_CloseDrains(t *testing.T) {
	l := NewLoop()

	count := 0
	for i := 0; i < 100; i++ {
		l.Enqueue(func() { count++ })
	}
	l.Close()

	assert.Equal(t, 100, count, "Close should run everything already enqueued")
}

func TestLoop_EnqueueAfterClose(t *testing.T) {
	l := NewLoop()
	l.Close()

	// Must neither panic nor block.
	l.Enqueue(func() { t.Error("fn ran after Close") })
	l.Close() // idempotent
}

func TestLoop_ConcurrentEnqueue(t *testing.T) {
	l := NewLoop()

	var wg sync.WaitGroup
	count := 0
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.Enqueue(func() { count++ })
			}
		}()
	}
	wg.Wait()
	l.Close()

	// No lock around count: the loop goroutine is the only writer.
	assert.Equal(t, 8*200, count)
}

func TestCurGoroutineID(t *testing.T) {
	id := curGoroutineID()
	require.NotZero(t, id)

	other := make(chan uint64, 1)
	go func() { other <- curGoroutineID() }()
	assert.NotEqual(t, id, <-other, "distinct goroutines have distinct ids")
}
