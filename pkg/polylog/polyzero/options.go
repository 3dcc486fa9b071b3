package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/pokt-network/cw721/pkg/polylog"
)

// WithOutput sets the writer which log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).Logger = zerolog.New(output)
	}
}

// WithLevel sets the minimum level which will be written.
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = zerolog.Level(level.Int())
	}
}

// WithTimestamp adds a "time" field to every event.
func WithTimestamp() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.With().Timestamp().Logger()
	}
}
