package main

import (
	"context"
	"errors"
	"io"

	"github.com/joeycumines/go-eddy"
	"github.com/joeycumines/logiface"
)

const (
	keyInterrupt byte = 0x03 // ^C
	keyEOF       byte = 0x04 // ^D
)

type (
	// session owns the editor, and is the only goroutine that touches it.
	session struct {
		editor   *eddy.Editor
		out      io.Writer
		logger   *logiface.Logger[logiface.Event]
		registry *registry
		done     bool
		lastCR   bool
	}

	input struct {
		data []byte
		err  error
	}
)

func newSession(cfg *config, out io.Writer, logger *logiface.Logger[logiface.Event]) (*session, error) {
	s := session{
		out:    out,
		logger: logger,
	}
	s.registry = newRegistry(&s, builtinCommands()...)

	options := append(
		cfg.editorOptions(),
		eddy.WithOutput(out),
		eddy.WithHinter(s.registry),
		eddy.WithExecutor(s.registry),
	)
	if logger != nil {
		options = append(options, eddy.WithLogger(logger))
	}

	editor, err := eddy.New(options...)
	if err != nil {
		return nil, err
	}
	s.editor = editor

	return &s, nil
}

// run shows the prompt, then feeds input to the editor until the session
// ends, the input is exhausted, or ctx is canceled.
func (x *session) run(ctx context.Context, r io.Reader) error {
	if err := x.editor.ShowPrompt(); err != nil {
		return err
	}

	ch := make(chan input)
	stop := make(chan struct{})
	defer close(stop)
	go readInput(r, ch, stop)

	for !x.done {
		select {
		case <-ctx.Done():
			x.done = true

		case in := <-ch:
			if err := x.feed(in.data); err != nil {
				return err
			}
			if in.err != nil {
				if !errors.Is(in.err, io.EOF) {
					return in.err
				}
				x.done = true
			}
		}
	}

	_, err := io.WriteString(x.out, "\r\n")
	return err
}

// feed submits p to the editor, handling session control keys, and mapping
// CR or CRLF to the editor's newline.
func (x *session) feed(p []byte) error {
	for _, b := range p {
		if x.done {
			return nil
		}

		cr := b == '\r'
		skip := b == '\n' && x.lastCR
		x.lastCR = cr

		switch {
		case skip:
			continue
		case cr:
			b = eddy.CodeNewline
		case b == keyInterrupt:
			x.done = true
			continue
		case b == keyEOF:
			if x.editor.Len() == 0 {
				x.done = true
			}
			continue
		}

		if err := x.editor.SubmitByte(b); err != nil {
			return err
		}
	}
	return nil
}

func (x *session) println(line string) {
	_, _ = io.WriteString(x.out, line+"\r\n")
}

func (x *session) clearLine() {
	_, _ = io.WriteString(x.out, "\r\x1b[2K")
}

func readInput(r io.Reader, ch chan<- input, stop <-chan struct{}) {
	for {
		buf := make([]byte, 256)
		n, err := r.Read(buf)
		if n == 0 && err == nil {
			continue
		}
		select {
		case ch <- input{data: buf[:n], err: err}:
		case <-stop:
			return
		}
		if err != nil {
			return
		}
	}
}
