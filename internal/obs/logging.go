// Package obs contains observability utilities such as logging and metrics.
package obs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global structured logger used by the service.
//
// It discards output until InitLogger is called.
var Logger = zerolog.Nop()

// InitLogger initializes the global Logger writing to stdout.
//
// Format "text" selects human readable console output; anything else is JSON.
// An unknown level falls back to info.
func InitLogger(level, format string) {
	Logger = NewLogger(os.Stdout, level, format)
}

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if strings.ToLower(format) == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
