package riffwave

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("component", "riffwave").Logger()

// SetLogger replaces the logger used for decode and file diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}
