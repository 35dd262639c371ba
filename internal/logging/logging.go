// Package logging configures zerolog for the command line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/riffwave"
)

// EnvLogLevel selects the level: trace, debug, info, warn, error or off.
const EnvLogLevel = "LOG_LEVEL"

var configureOnce sync.Once

// Configure sets the global level from the environment and routes both the
// global logger and the riffwave package logger to a console writer on w.
func Configure(w io.Writer) {
	configureOnce.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		zerolog.SetGlobalLevel(ParseLevel(os.Getenv(EnvLogLevel)))

		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
		riffwave.SetLogger(log.With().Str("component", "riffwave").Logger())
	})
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
