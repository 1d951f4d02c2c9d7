package odfmark

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "odfmark",
})

// SetLogLevel sets the package log level ("debug", "info", "warn", "error").
// Unknown values leave the level unchanged.
func SetLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level", "level", level)
		return
	}
	logger.SetLevel(lvl)
}

// SetLogOutput redirects package logging. Tests pass io.Discard.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
}

// Logger returns the package logger for callers that want to attach fields.
func Logger() *log.Logger {
	return logger
}
