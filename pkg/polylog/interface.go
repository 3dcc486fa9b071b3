package polylog

import (
	"context"
	"time"
)

// Logger is the interface which cw721 packages log through. It mirrors a
// subset of zerolog's API so that the zerolog-backed implementation stays thin.
type Logger interface {
	// Debug, Info, Warn and Error each start a new event at their respective
	// level. Msg, Msgf or Send MUST be called on the returned event for it to
	// be written.
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event

	// With returns a child logger with keyVals added to its context.
	With(keyVals ...any) Logger

	// WithLevel starts a new event at the given level.
	WithLevel(level Level) Event

	// WithContext returns a copy of ctx with the receiver attached, such that
	// it can be retrieved with Ctx.
	WithContext(ctx context.Context) context.Context
}

// Event is a single, in-progress log line.
type Event interface {
	Str(key, value string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Uint32(key string, value uint32) Event
	Uint64(key string, value uint64) Event
	Err(err error) Event
	Dur(key string, value time.Duration) Event
	Fields(fields any) Event
	Enabled() bool
	Msg(message string)
	Msgf(format string, args ...any)
	Send()
}

// Level is implemented by each backend's level type.
type Level interface {
	String() string
	Int() int
}

// LoggerOption configures a backend-specific logger at construction time.
type LoggerOption func(logger Logger)
