//go:build !unix

// Package term switches a terminal in and out of raw mode, so that an
// editor receives every byte as it is typed, and echoes itself.
package term

import (
	"errors"
)

// ErrUnsupported is returned on platforms without termios.
var ErrUnsupported = errors.New(`term: raw mode unsupported on this platform`)

func SetRaw(int) error { return ErrUnsupported }

func Restore() error { return ErrUnsupported }

func RestoreFD(int) error { return ErrUnsupported }
