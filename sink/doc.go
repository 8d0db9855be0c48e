// Package sink provides push-style consumers of the event buffer: a
// logger notifies its sinks once per appended event, outside the buffer
// lock. WriterSink mirrors events to any io.Writer; ZapSink bridges into
// a zap logger.
package sink
