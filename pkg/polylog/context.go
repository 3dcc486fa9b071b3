package polylog

import "context"

// CtxKey is the key under which a Logger is stored in a context.Context.
const CtxKey = "polylog/context"

// DefaultContextLogger is returned by Ctx when no logger has been attached to
// the context. Applications MAY assign it once at startup.
var DefaultContextLogger Logger

// Ctx returns the Logger attached to ctx, falling back to DefaultContextLogger,
// or to a logger which discards everything if that is nil.
func Ctx(ctx context.Context) Logger {
	if logger, ok := ctx.Value(CtxKey).(Logger); ok {
		return logger
	}
	if DefaultContextLogger != nil {
		return DefaultContextLogger
	}
	return nopLogger{}
}
