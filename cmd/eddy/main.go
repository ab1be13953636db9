// Command eddy is an interactive shell, built on the eddy line editor.
//
// It puts the terminal into raw mode, and feeds each byte typed to the
// editor. Tab completes command names, and Enter runs the line. Type help
// for a list of commands. ^C, or ^D on an empty line, exits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeycumines/go-eddy/term"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, colorable.NewColorableStdout(), os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := parseConfig(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "eddy: %v\n", err)
		return 2
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "eddy: %v\n", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	s, err := newSession(cfg, stdout, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "eddy: %v\n", err)
		return 2
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if err := term.SetRaw(int(f.Fd())); err != nil {
			_, _ = fmt.Fprintf(stderr, "eddy: raw mode: %v\n", err)
			return 1
		}
		defer func() {
			if err := term.Restore(); err != nil {
				logger.Warning().Err(err).Log(`failed to restore terminal`)
			}
		}()
		logger.Debug().Log(`terminal in raw mode`)
	}

	logger.Info().Str(`prompt`, cfg.prompt).Log(`session started`)

	if err := s.run(ctx, stdin); err != nil {
		logger.Err().Err(err).Log(`session failed`)
		_, _ = fmt.Fprintf(stderr, "eddy: %v\n", err)
		return 1
	}

	logger.Info().Log(`session ended`)

	return 0
}
