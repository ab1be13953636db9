package eddy

type (
	// Hinter is called when tab is pressed, with the current line.
	//
	// It returns the new line, which may be the input unchanged, or a
	// completion of it. The result is truncated at the first NUL byte, and
	// to the line capacity. Hinter implementations may also write hints
	// (e.g. candidate completions) to the terminal, prior to returning, as
	// the editor reprints the prompt and line after the call.
	Hinter interface {
		Hint(line string) string
	}

	// HinterFunc implements Hinter.
	HinterFunc func(line string) string

	// Executor is called when newline is received, with the finished line.
	// A non-nil error is reported to the terminal, as an ERROR line.
	Executor interface {
		Exec(line string) error
	}

	// ExecutorFunc implements Executor.
	ExecutorFunc func(line string) error
)

var (
	// compile time assertions

	_ Hinter   = HinterFunc(nil)
	_ Executor = ExecutorFunc(nil)
)

func (x HinterFunc) Hint(line string) string { return x(line) }

func (x ExecutorFunc) Exec(line string) error { return x(line) }

func validHinter(v Hinter) bool {
	if f, ok := v.(HinterFunc); ok {
		return f != nil
	}
	return v != nil
}

func validExecutor(v Executor) bool {
	if f, ok := v.(ExecutorFunc); ok {
		return f != nil
	}
	return v != nil
}
