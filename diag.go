package eddy

import (
	"strconv"
)

// logUnrecognized reports an escape sequence with no binding, at most at the
// configured rates, per distinct sequence.
func (x *Editor) logUnrecognized(seq []byte) {
	b := x.logger.Debug()
	if !b.Enabled() {
		return
	}
	if _, ok := x.limiter.Allow(string(seq)); !ok {
		b.Release()
		return
	}
	b.Str(`seq`, strconv.Quote(string(seq))).
		Log(`eddy: unrecognized escape sequence`)
}

func (x *Editor) logEscapeOverflow(c byte) {
	x.logger.Debug().
		Int(`cap`, x.esc.Cap()).
		Int(`byte`, int(c)).
		Log(`eddy: escape sequence truncated`)
}

func (x *Editor) logLineFull(c byte) {
	x.logger.Debug().
		Int(`cap`, x.line.Cap()).
		Int(`byte`, int(c)).
		Log(`eddy: line full, byte dropped`)
}

func (x *Editor) logHintTruncated(n int) {
	x.logger.Debug().
		Int(`len`, n).
		Int(`cap`, x.line.Cap()).
		Log(`eddy: hint truncated`)
}

func (x *Editor) logExecFailed(err error) {
	x.logger.Err().
		Err(err).
		Str(`line`, x.line.String()).
		Log(`eddy: exec failed`)
}
