package eddy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var errWrite = errors.New(`write failed`)

// recorder captures each call to Write, optionally failing the call at
// index failAt (0-based), and every call after it.
type recorder struct {
	writes []string
	failAt int
}

func newRecorder() *recorder { return &recorder{failAt: -1} }

func (x *recorder) Write(p []byte) (int, error) {
	if x.failAt >= 0 && len(x.writes) >= x.failAt {
		x.writes = append(x.writes, `!`+string(p))
		return 0, errWrite
	}
	x.writes = append(x.writes, string(p))
	return len(p), nil
}

func (x *recorder) String() string { return strings.Join(x.writes, ``) }

func (x *recorder) reset() { x.writes = nil }

// newTestEditor returns an editor writing to a recorder, with the given
// options applied last.
func newTestEditor(t *testing.T, options ...Option) (*Editor, *recorder) {
	t.Helper()
	rec := newRecorder()
	x, err := New(append([]Option{WithOutput(rec)}, options...)...)
	require.NoError(t, err)
	require.NotNil(t, x)
	return x, rec
}

// feed submits each byte of s, failing the test on error.
func feed(t *testing.T, x *Editor, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		require.NoError(t, x.SubmitByte(s[i]), `byte %d (%q) of %q`, i, s[i], s)
	}
}

const (
	keyLeft   = SeqCursorLeft
	keyRight  = SeqCursorRight
	keyDelete = SeqDelete
	keyBS     = "\x7f"
)
