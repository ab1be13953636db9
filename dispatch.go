package eddy

import (
	"strings"
)

// hint calls the Hinter with the current line, replacing the line with the
// result, moving the cursor to the end, then reprinting the prompt and line.
func (x *Editor) hint() error {
	if x.hinter == nil {
		return ErrNoHinter
	}

	line := x.hinter.Hint(x.line.String())

	if i := strings.IndexByte(line, 0); i >= 0 {
		line = line[:i]
	}
	if len(line) > x.line.Cap() {
		x.logHintTruncated(len(line))
		line = line[:x.line.Cap()]
	}

	// cannot fail: fits
	_ = x.line.SetString(line)
	x.cursor = x.line.Len()

	return x.out.seq(x.prompt.Bytes(), x.line.Bytes())
}

// submit calls the Executor with the current line, and starts a new line.
// The line is reset regardless of the outcome.
func (x *Editor) submit() error {
	if x.executor == nil {
		return ErrNoExecutor
	}

	defer x.resetLine()

	if err := x.out.write(seqCRLF); err != nil {
		return err
	}

	if err := x.executor.Exec(x.line.String()); err != nil {
		x.logExecFailed(err)
		if err := x.out.write(seqError); err != nil {
			return err
		}
	}

	return x.out.write(x.prompt.Bytes())
}

func (x *Editor) resetLine() {
	x.line.Reset()
	x.cursor = 0
}
