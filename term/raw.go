//go:build unix

// Package term switches a terminal in and out of raw mode, so that an
// editor receives every byte as it is typed, and echoes itself.
package term

import (
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var (
	saveTermios     unix.Termios
	saveTermiosErr  error
	saveTermiosFD   int
	saveTermiosOnce sync.Once
)

func getOriginalTermios(fd int) (*unix.Termios, error) {
	saveTermiosOnce.Do(func() {
		saveTermiosFD = fd
		var t *unix.Termios
		t, saveTermiosErr = termios.Tcgetattr(uintptr(fd))
		if saveTermiosErr == nil {
			saveTermios = *t
		}
	})
	if saveTermiosErr != nil {
		return nil, saveTermiosErr
	}
	t := saveTermios
	return &t, nil
}

// SetRaw puts the terminal fd into raw mode: no echo, no line buffering,
// no signal generation, and no CR to NL translation. Reads block until at
// least one byte is available.
//
// The state of the first fd passed to SetRaw is saved, see Restore.
func SetRaw(fd int) error {
	n, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}

	n.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK |
		unix.ISTRIP | unix.INLCR | unix.IGNCR |
		unix.ICRNL | unix.IXON
	n.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG | unix.ECHONL
	n.Cflag &^= unix.CSIZE | unix.PARENB
	n.Cflag |= unix.CS8
	n.Cc[unix.VMIN] = 1
	n.Cc[unix.VTIME] = 0

	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, n)
}

// Restore returns the terminal saved by SetRaw to its original state.
func Restore() error {
	o, err := getOriginalTermios(saveTermiosFD)
	if err != nil {
		return err
	}
	return termios.Tcsetattr(uintptr(saveTermiosFD), termios.TCSANOW, o)
}

// RestoreFD applies the saved original state to fd.
func RestoreFD(fd int) error {
	o, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}
	return termios.Tcsetattr(uintptr(fd), termios.TCSANOW, o)
}
