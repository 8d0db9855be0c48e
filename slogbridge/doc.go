// Package slogbridge adapts a log/slog front end onto the event buffer:
//
//	slog.SetDefault(slog.New(slogbridge.New(buf, slog.LevelInfo)))
//
// slog levels fold onto the buffer's levels (there is no slog analogue
// for success or fatal), attrs become tags, and error-valued attrs become
// the event's attached error.
package slogbridge
