package polylog

import (
	"context"
	"time"
)

var (
	_ Logger = nopLogger{}
	_ Event  = nopEvent{}
)

// nopLogger discards everything. It is returned by Ctx when neither the
// context nor DefaultContextLogger provide a logger.
type nopLogger struct{}

func (nopLogger) Debug() Event { return nopEvent{} }
func (nopLogger) Info() Event { return nopEvent{} }
func (nopLogger) Warn() Event { return nopEvent{} }
func (nopLogger) Error() Event { return nopEvent{} }
func (l nopLogger) With(...any) Logger { return l }
func (nopLogger) WithLevel(Level) Event { return nopEvent{} }
func (nopLogger) WithContext(ctx context.Context) context.Context {
	return ctx
}

type nopEvent struct{}

func (e nopEvent) Str(string, string) Event { return e }
func (e nopEvent) Bool(string, bool) Event { return e }
func (e nopEvent) Int(string, int) Event { return e }
func (e nopEvent) Uint32(string, uint32) Event { return e }
func (e nopEvent) Uint64(string, uint64) Event { return e }
func (e nopEvent) Err(error) Event { return e }
func (e nopEvent) Dur(string, time.Duration) Event { return e }
func (e nopEvent) Fields(any) Event { return e }
func (nopEvent) Enabled() bool { return false }
func (nopEvent) Msg(string) {}
func (nopEvent) Msgf(string, ...any) {}
func (nopEvent) Send() {}
