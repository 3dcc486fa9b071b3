package polyzero

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/pokt-network/cw721/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

// zerologLogger is a thin wrapper around a zerolog logger which implements
// the polylog.Logger interface.
type zerologLogger struct {
	// NB: Default (0) is Debug.
	level zerolog.Level
	zerolog.Logger
}

// NewLogger constructs a new zerolog-backed logger which conforms to the
// polylog.Logger interface. By default, the logger writes to os.Stderr and
// logs at the Debug level.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	ze := &zerologLogger{
		level:  zerolog.DebugLevel,
		Logger: zerolog.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(ze)
	}

	ze.Logger = ze.Logger.Level(ze.level)
	return ze
}

// Debug starts a new message with debug level.
func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

// Info starts a new message with info level.
func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

// Warn starts a new message with warn level.
func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

// Error starts a new message with error level.
func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

// With creates a child logger with the fields constructed from keyVals added
// to its context.
func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		level:  ze.level,
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithLevel starts a new message with level.
func (ze *zerologLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(ze.Logger.WithLevel(zerolog.Level(level.Int())))
}

// WithContext returns a copy of ctx with the receiver logger attached, both
// under the polylog key and zerolog's own context key.
func (ze *zerologLogger) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, polylog.CtxKey, ze)
	return ze.Logger.WithContext(ctx)
}

// Write implements io.Writer. This is useful to set as a writer for the
// standard library log.
func (ze *zerologLogger) Write(p []byte) (n int, err error) {
	return ze.Logger.Write(p)
}
