package polyzero

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pokt-network/cw721/pkg/polylog"
)

var _ polylog.Event = (*zerologEvent)(nil)

type zerologEvent struct {
	event *zerolog.Event
}

func newEvent(event *zerolog.Event) polylog.Event {
	return &zerologEvent{event: event}
}

func (zle *zerologEvent) Str(key, value string) polylog.Event {
	zle.event.Str(key, value)
	return zle
}

func (zle *zerologEvent) Bool(key string, value bool) polylog.Event {
	zle.event.Bool(key, value)
	return zle
}

func (zle *zerologEvent) Int(key string, value int) polylog.Event {
	zle.event.Int(key, value)
	return zle
}

func (zle *zerologEvent) Uint32(key string, value uint32) polylog.Event {
	zle.event.Uint32(key, value)
	return zle
}

func (zle *zerologEvent) Uint64(key string, value uint64) polylog.Event {
	zle.event.Uint64(key, value)
	return zle
}

func (zle *zerologEvent) Err(err error) polylog.Event {
	zle.event.Err(err)
	return zle
}

func (zle *zerologEvent) Dur(key string, value time.Duration) polylog.Event {
	zle.event.Dur(key, value)
	return zle
}

// Fields accepts either a map[string]any or a []any of alternating keys and
// values.
func (zle *zerologEvent) Fields(fields any) polylog.Event {
	zle.event.Fields(fields)
	return zle
}

func (zle *zerologEvent) Enabled() bool {
	return zle.event.Enabled()
}

func (zle *zerologEvent) Msg(msg string) {
	zle.event.Msg(msg)
}

func (zle *zerologEvent) Msgf(format string, args ...any) {
	zle.event.Msgf(format, args...)
}

func (zle *zerologEvent) Send() {
	zle.event.Send()
}
