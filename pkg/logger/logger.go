package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a structured logger. Development environments get
// human-readable console output, everything else JSON.
func New(environment string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).With().Timestamp().Logger()

	// Redirect the global zerolog logger as well
	log.Logger = zl

	return zl
}
