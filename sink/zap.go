package sink

import (
	"go.uber.org/zap"

	"github.com/sbond75/uilogger/core"
)

// ZapSink mirrors buffered events onto a zap logger, for hosts that
// already route terminal or file output through zap. The six buffer
// levels fold onto zap's four non-terminating ones; Success keeps its
// identity via the level field, and Fatal maps to zap's Error because a
// mirror must never call os.Exit on the host's behalf.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink forwarding to log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Consume forwards e to the underlying zap logger.
func (s *ZapSink) Consume(e core.Event) {
	fields := make([]zap.Field, 0, 5)
	fields = append(fields,
		zap.String("level", e.Level.String()),
		zap.String("source_file", e.Metadata.SourceFile),
		zap.Int("source_line", e.Metadata.SourceLine),
	)
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	if labels := core.Labels(e.Metadata.Tags); len(labels) > 0 {
		fields = append(fields, zap.Strings("tags", labels))
	}

	switch e.Level {
	case core.DebugLevel:
		s.log.Debug(e.Message, fields...)
	case core.WarningLevel:
		s.log.Warn(e.Message, fields...)
	case core.ErrorLevel, core.FatalLevel:
		s.log.Error(e.Message, fields...)
	default: // SuccessLevel, InfoLevel
		s.log.Info(e.Message, fields...)
	}
}
