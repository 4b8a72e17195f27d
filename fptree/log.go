package fptree

import "github.com/rs/zerolog"

// zerologLogger is a thin convenience wrapper around zerolog.Logger
// following the field-tagging style optakt-flow-dps uses throughout its
// storage and trie layers (log.With().Str(...).Logger(), structured
// key/value events). It lets call sites pass loose key/value pairs instead
// of chaining .Str/.Int calls for every log line in this package.
type zerologLogger struct {
	logger zerolog.Logger
}

func (l zerologLogger) event(e *zerolog.Event, msg string, kvs ...any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kvs[i+1])
	}
	e.Msg(msg)
}

// Debug logs a debug-level structured event with the given key/value pairs.
func (l zerologLogger) Debug(msg string, kvs ...any) {
	l.event(l.logger.Debug(), msg, kvs...)
}

// Error logs an error-level structured event, attaching err.
func (l zerologLogger) Error(err error, msg string, kvs ...any) {
	l.event(l.logger.Error().Err(err), msg, kvs...)
}
