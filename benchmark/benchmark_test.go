package benchmark

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sbond75/uilogger/core"
	"github.com/sbond75/uilogger/dispatch"
	"github.com/sbond75/uilogger/logger"
	"github.com/sbond75/uilogger/sink"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newBufferLogger returns a logger that only retains events in memory.
func newBufferLogger() *logger.Logger {
	return logger.New("bench")
}

// newZapLogger returns a zap.Logger writing JSON to io.Discard, the
// closest write-and-forget analogue to an in-memory append.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c)
}

// ---------------------------------------------------------------------------
// Scenario 1 – single append, no tags
// ---------------------------------------------------------------------------

func BenchmarkAppend_NoTags(b *testing.B) {
	b.Run("uilogger", func(b *testing.B) {
		l := newBufferLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – append with tags and an error
// ---------------------------------------------------------------------------

func BenchmarkAppend_TagsAndError(b *testing.B) {
	cause := errors.New("boom")

	b.Run("uilogger", func(b *testing.B) {
		l := newBufferLogger()
		tag := core.StringTag("bench")
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("error message", cause, tag)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("error message", zap.Error(cause), zap.String("tag", "bench"))
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – appends re-dispatched from a foreign goroutine
// ---------------------------------------------------------------------------

func BenchmarkAppend_OffContext(b *testing.B) {
	loop := dispatch.NewLoop()
	l := logger.NewBuilder().WithExecutor(loop).Build()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("queued message")
	}
	b.StopTimer()
	loop.Close()
}

// ---------------------------------------------------------------------------
// Scenario 4 – appends mirrored through a zap sink
// ---------------------------------------------------------------------------

func BenchmarkAppend_ZapSink(b *testing.B) {
	l := logger.NewBuilder().
		WithSinks(sink.NewZapSink(newZapLogger())).
		Build()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("mirrored message")
	}
}

// ---------------------------------------------------------------------------
// Scenario 5 – rendering the blob at several buffer sizes
// ---------------------------------------------------------------------------

func BenchmarkBlob(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("events_%d", size), func(b *testing.B) {
			l := newBufferLogger()
			for i := 0; i < size; i++ {
				l.Info("buffered message")
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = l.Blob()
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Scenario 6 – concurrent readers against a writer
// ---------------------------------------------------------------------------

func BenchmarkEntries_Parallel(b *testing.B) {
	l := newBufferLogger()
	for i := 0; i < 500; i++ {
		l.Info("buffered message")
	}
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.Entries()
		}
	})
}
