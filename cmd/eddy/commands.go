package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type (
	command struct {
		name  string
		usage string
		run   func(s *session, args []string) error
	}

	// registry implements eddy.Hinter and eddy.Executor.
	registry struct {
		s        *session
		commands map[string]*command
		names    []string
	}
)

func newRegistry(s *session, commands ...*command) *registry {
	r := registry{
		s:        s,
		commands: make(map[string]*command, len(commands)),
	}
	for _, c := range commands {
		r.commands[c.name] = c
		r.names = append(r.names, c.name)
	}
	sort.Strings(r.names)
	return &r
}

func builtinCommands() []*command {
	return []*command{
		{name: `help`, usage: `help: list commands`, run: runHelp},
		{name: `echo`, usage: `echo [args...]: print args`, run: runEcho},
		{name: `prompt`, usage: `prompt [text]: set the prompt`, run: runPrompt},
		{name: `clear`, usage: `clear: clear the screen`, run: runClear},
		{name: `exit`, usage: `exit: end the session`, run: runExit},
	}
}

// Hint completes the command name, if the line is a prefix of exactly one
// command. If the prefix is ambiguous, the candidates are listed, and the
// line is extended to their common prefix. Otherwise, the current line is
// cleared, so the editor may redraw it in place.
func (x *registry) Hint(line string) string {
	if strings.ContainsRune(line, ' ') {
		x.s.clearLine()
		return line
	}

	var candidates []string
	for _, name := range x.names {
		if strings.HasPrefix(name, line) {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
		x.s.clearLine()
		return line
	case 1:
		x.s.clearLine()
		return candidates[0] + ` `
	}

	// the editor reprints the prompt and line below the list
	x.s.println("\r\n" + strings.Join(candidates, `  `))

	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// Exec runs the named command. Blank lines are ignored.
func (x *registry) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	c, ok := x.commands[fields[0]]
	if !ok {
		x.s.logger.Info().
			Str(`cmd`, fields[0]).
			Log(`unknown command`)
		return fmt.Errorf(`unknown command: %q`, fields[0])
	}
	return c.run(x.s, fields[1:])
}

func runHelp(s *session, _ []string) error {
	for _, name := range s.registry.names {
		s.println(s.registry.commands[name].usage)
	}
	return nil
}

func runEcho(s *session, args []string) error {
	s.println(strings.Join(args, ` `))
	return nil
}

func runPrompt(s *session, args []string) error {
	prompt := strings.Join(args, ` `)
	if prompt != `` {
		prompt += ` `
	}
	return s.editor.SetPrompt(prompt)
}

func runClear(s *session, _ []string) error {
	_, err := io.WriteString(s.out, "\x1b[H\x1b[2J")
	return err
}

func runExit(s *session, _ []string) error {
	s.done = true
	return nil
}
