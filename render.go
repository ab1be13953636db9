package eddy

import (
	"fmt"
	"io"
)

// VT100 output sequences.
var (
	seqBackspace     = []byte("\x08")
	seqCursorRight   = []byte("\x1b[C")
	seqSaveCursor    = []byte("\x1b[s")
	seqRestoreCursor = []byte("\x1b[u")
	seqClearDown     = []byte("\x1b[J")
	// overwrites the glyph left behind by a left shift, then restores
	seqEraseRestore = []byte(" \x1b[u")
	seqCRLF         = []byte("\r\n")
	seqError        = []byte("ERROR\r\n")
)

// renderer wraps the output capability. Every write is a single call to the
// underlying writer, and write failures are returned as-is (wrapped), with
// no retry.
type renderer struct {
	w   io.Writer
	one [1]byte
}

func (x *renderer) write(b []byte) error {
	if x.w == nil {
		return ErrNoOutput
	}
	if _, err := x.w.Write(b); err != nil {
		return fmt.Errorf(`eddy: write: %w`, err)
	}
	return nil
}

func (x *renderer) put(c byte) error {
	x.one[0] = c
	return x.write(x.one[:])
}

// seq writes each non-empty part, in order, stopping at the first failure.
func (x *renderer) seq(parts ...[]byte) error {
	for _, b := range parts {
		if len(b) == 0 {
			continue
		}
		if err := x.write(b); err != nil {
			return err
		}
	}
	return nil
}
