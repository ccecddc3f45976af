// Package logging builds the zerolog loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Mode selects where log lines go.
type Mode int

const (
	// Interactive keeps the terminal clean for the TUI: JSON to the log
	// file, or nothing when no file is configured.
	Interactive Mode = iota
	// Console writes human-readable lines to stderr.
	Console
)

// New returns a logger for mode and a close func for any opened file.
func New(mode Mode, file, level string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}

	var out io.Writer
	closer := noop
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	case mode == Console:
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	default:
		return zerolog.Nop(), noop, nil
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return logger, closer, nil
}
