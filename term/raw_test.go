//go:build unix

package term

import (
	"errors"
	"sync"
	"testing"

	"github.com/creack/pty"
	"github.com/pkg/term/termios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// setSaved marks the saved state as already captured.
func setSaved(err error, fd int, v unix.Termios) {
	saveTermiosOnce = sync.Once{}
	saveTermiosErr = err
	saveTermiosFD = fd
	saveTermios = v
	saveTermiosOnce.Do(func() {})
}

func clearSaved() {
	saveTermiosOnce = sync.Once{}
	saveTermiosErr = nil
	saveTermiosFD = 0
	saveTermios = unix.Termios{}
}

func TestGetOriginalTermios_copy(t *testing.T) {
	t.Cleanup(clearSaved)
	setSaved(nil, 42, unix.Termios{Iflag: 123, Lflag: 456, Cflag: 789})

	got, err := getOriginalTermios(42)
	require.NoError(t, err)
	assert.NotSame(t, &saveTermios, got)
	assert.Equal(t, saveTermios, *got)

	got.Iflag = 0
	assert.EqualValues(t, 123, saveTermios.Iflag)
}

func TestGetOriginalTermios_invalidFD(t *testing.T) {
	t.Cleanup(clearSaved)
	clearSaved()

	_, err := getOriginalTermios(-1)
	require.Error(t, err)
	// cached
	assert.Equal(t, err, saveTermiosErr)
	_, err2 := getOriginalTermios(-1)
	assert.Equal(t, err, err2)
}

func TestSetRaw_cachedError(t *testing.T) {
	t.Cleanup(clearSaved)
	boom := errors.New(`boom`)
	setSaved(boom, 10, unix.Termios{})
	assert.ErrorIs(t, SetRaw(10), boom)
	assert.ErrorIs(t, Restore(), boom)
	assert.ErrorIs(t, RestoreFD(10), boom)
}

func TestSetRaw_invalidFD(t *testing.T) {
	t.Cleanup(clearSaved)
	setSaved(nil, -1, unix.Termios{})
	assert.Error(t, SetRaw(-1))
	assert.Error(t, Restore())
	assert.Error(t, RestoreFD(-1))
}

func TestSetRaw_pty(t *testing.T) {
	t.Cleanup(clearSaved)
	clearSaved()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf(`pty unavailable: %v`, err)
	}
	defer ptmx.Close()
	defer tty.Close()

	fd := int(tty.Fd())

	before, err := termios.Tcgetattr(uintptr(fd))
	require.NoError(t, err)

	require.NoError(t, SetRaw(fd))

	raw, err := termios.Tcgetattr(uintptr(fd))
	require.NoError(t, err)
	assert.Zero(t, raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN))
	assert.Zero(t, raw.Iflag&(unix.ICRNL|unix.IXON))
	assert.Equal(t, uint8(1), raw.Cc[unix.VMIN])
	assert.Equal(t, uint8(0), raw.Cc[unix.VTIME])
	assert.Equal(t, fd, saveTermiosFD)

	require.NoError(t, Restore())

	after, err := termios.Tcgetattr(uintptr(fd))
	require.NoError(t, err)
	assert.Equal(t, before.Lflag, after.Lflag)
	assert.Equal(t, before.Iflag, after.Iflag)
}
