package main

import (
	"io"
	"os"

	"github.com/joeycumines/go-eddy/internal/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/rs/zerolog"
)

// openLogger returns a nil logger and closer if no log file is configured,
// as the terminal is in use by the editor.
func openLogger(cfg *config) (*logiface.Logger[logiface.Event], io.Closer, error) {
	if cfg.logFile == `` {
		return nil, nil, nil
	}
	f, err := os.OpenFile(cfg.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(cfg.logFormat, cfg.logLevel, f), f, nil
}

func newLogger(format string, level logiface.Level, w io.Writer) *logiface.Logger[logiface.Event] {
	switch format {
	case `zerolog`:
		return izerolog.New(zerolog.New(w).With().Timestamp().Logger(), level)
	case `console`:
		return izerolog.New(zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger(), level)
	default:
		return stumpy.L.New(
			stumpy.L.WithStumpy(stumpy.WithWriter(w)),
			stumpy.L.WithLevel(level),
		).Logger()
	}
}
