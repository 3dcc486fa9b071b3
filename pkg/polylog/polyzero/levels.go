package polyzero

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokt-network/cw721/pkg/polylog"
)

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = Level(zerolog.WarnLevel)
	// ErrorLevel logs are high-priority.
	ErrorLevel = Level(zerolog.ErrorLevel)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level int

// Levels returns all supported levels, lowest first.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel maps a level name (debug|info|warn|error) to its Level. Unknown
// names fall back to InfoLevel.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
