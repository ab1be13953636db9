package eddy

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(buf), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(level),
	).Logger()
}

func decodeLogs(t *testing.T, buf *bytes.Buffer) (logs []map[string]any) {
	t.Helper()
	dec := json.NewDecoder(buf)
	for dec.More() {
		var v map[string]any
		require.NoError(t, dec.Decode(&v))
		logs = append(logs, v)
	}
	return
}

func TestEditor_logUnrecognized_rateLimited(t *testing.T) {
	var buf bytes.Buffer
	x, rec := newTestEditor(t,
		WithLogger(newTestLogger(&buf, logiface.LevelDebug)),
		WithDiagnosticRates(map[time.Duration]int{time.Hour: 1}),
	)

	feed(t, x, "\x1b[Z\x1b[Z\x1b[Z\x1b[Y")

	// always echoed
	assert.Equal(t, "\x1b[Z\x1b[Z\x1b[Z\x1b[Y", rec.String())

	logs := decodeLogs(t, &buf)
	require.Len(t, logs, 2)
	assert.Equal(t, map[string]any{
		`lvl`: `debug`,
		`seq`: `"\x1b[Z"`,
		`msg`: `eddy: unrecognized escape sequence`,
	}, logs[0])
	assert.Equal(t, `"\x1b[Y"`, logs[1][`seq`])
}

func TestEditor_logUnrecognized_unlimited(t *testing.T) {
	var buf bytes.Buffer
	x, _ := newTestEditor(t,
		WithLogger(newTestLogger(&buf, logiface.LevelDebug)),
		WithDiagnosticRates(nil),
	)
	for i := 0; i < 20; i++ {
		feed(t, x, "\x1b[Z")
	}
	assert.Len(t, decodeLogs(t, &buf), 20)
}

func TestEditor_logUnrecognized_disabled(t *testing.T) {
	var buf bytes.Buffer
	x, rec := newTestEditor(t, WithLogger(newTestLogger(&buf, logiface.LevelInformational)))
	feed(t, x, "\x1b[Z")
	assert.Equal(t, "\x1b[Z", rec.String())
	assert.Zero(t, buf.Len())
}

func TestEditor_logOverflow(t *testing.T) {
	var buf bytes.Buffer
	x, _ := newTestEditor(t,
		WithLogger(newTestLogger(&buf, logiface.LevelDebug)),
		WithLineCapacity(3),
		WithEscapeCapacity(2),
		WithHinter(HinterFunc(func(string) string { return `toolong` })),
	)
	feed(t, x, "abc\x1b[1D\t")

	var msgs []string
	for _, v := range decodeLogs(t, &buf) {
		assert.Equal(t, `debug`, v[`lvl`])
		msgs = append(msgs, v[`msg`].(string))
	}
	assert.Equal(t, []string{
		`eddy: line full, byte dropped`,
		`eddy: escape sequence truncated`,
		`eddy: escape sequence truncated`,
		`eddy: unrecognized escape sequence`,
		`eddy: hint truncated`,
	}, msgs)
	assert.Equal(t, `to`, x.Line())
}

func TestEditor_logExecFailed(t *testing.T) {
	var buf bytes.Buffer
	x, rec := newTestEditor(t,
		WithLogger(newTestLogger(&buf, logiface.LevelError)),
		WithExecutor(ExecutorFunc(func(string) error { return errors.New(`boom`) })),
	)
	feed(t, x, "run\n")
	assert.Equal(t, "run\r\nERROR\r\n>", rec.String())

	logs := decodeLogs(t, &buf)
	require.Len(t, logs, 1)
	assert.Equal(t, map[string]any{
		`lvl`:  `err`,
		`err`:  `boom`,
		`line`: `run`,
		`msg`:  `eddy: exec failed`,
	}, logs[0])
}
