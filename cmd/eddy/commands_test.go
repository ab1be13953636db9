package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, args ...string) (*session, *bytes.Buffer) {
	t.Helper()
	cfg, err := parseConfig(args, env(nil), &bytes.Buffer{})
	require.NoError(t, err)
	var out bytes.Buffer
	s, err := newSession(cfg, &out, nil)
	require.NoError(t, err)
	return s, &out
}

func TestRegistry_Hint(t *testing.T) {
	for _, tc := range [...]struct {
		line string
		want string
		out  string
	}{
		{`ec`, `echo `, "\r\x1b[2K"},
		{`c`, `clear `, "\r\x1b[2K"},
		{`p`, `prompt `, "\r\x1b[2K"},
		{`help`, `help `, "\r\x1b[2K"},
		{`e`, `e`, "\r\necho  exit\r\n"},
		{``, ``, "\r\nclear  echo  exit  help  prompt\r\n"},
		{`zz`, `zz`, "\r\x1b[2K"},
		{`echo a`, `echo a`, "\r\x1b[2K"},
	} {
		t.Run(tc.line, func(t *testing.T) {
			s, out := newTestSession(t)
			assert.Equal(t, tc.want, s.registry.Hint(tc.line))
			assert.Equal(t, tc.out, out.String())
		})
	}
}

func TestRegistry_Hint_commonPrefix(t *testing.T) {
	var out bytes.Buffer
	s := session{out: &out}
	r := newRegistry(&s,
		&command{name: `status`},
		&command{name: `stats`},
		&command{name: `stop`},
	)
	assert.Equal(t, `stat`, r.Hint(`sta`))
	assert.Equal(t, "\r\nstats  status\r\n", out.String())
	assert.Equal(t, `st`, r.Hint(`s`))
}

func TestRegistry_Exec(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.registry.Exec(``))
	require.NoError(t, s.registry.Exec(`   `))
	assert.Zero(t, out.Len())

	require.NoError(t, s.registry.Exec(`echo  a   b`))
	assert.Equal(t, "a b\r\n", out.String())

	out.Reset()
	require.NoError(t, s.registry.Exec(`help`))
	assert.Equal(t, "clear: clear the screen\r\n"+
		"echo [args...]: print args\r\n"+
		"exit: end the session\r\n"+
		"help: list commands\r\n"+
		"prompt [text]: set the prompt\r\n", out.String())

	out.Reset()
	require.NoError(t, s.registry.Exec(`clear`))
	assert.Equal(t, "\x1b[H\x1b[2J", out.String())

	assert.EqualError(t, s.registry.Exec(`nope x`), `unknown command: "nope"`)

	require.NoError(t, s.registry.Exec(`prompt %`))
	assert.Equal(t, `% `, s.editor.Prompt())
	require.NoError(t, s.registry.Exec(`prompt`))
	assert.Equal(t, ``, s.editor.Prompt())
	assert.Error(t, s.registry.Exec(`prompt toolong`))

	assert.False(t, s.done)
	require.NoError(t, s.registry.Exec(`exit now`))
	assert.True(t, s.done)
}
