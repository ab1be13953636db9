package eddy

import (
	"fmt"
	"io"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/go-eddy/internal/bounded"
	"github.com/joeycumines/logiface"
)

// Editor is a single-line interactive editor. Use New to construct.
//
// Editor is not safe for concurrent use, including from within capabilities,
// which are called synchronously.
type Editor struct {
	line       *bounded.Bytes
	cursor     int
	esc        *bounded.Bytes
	collecting bool
	prompt     *bounded.Bytes
	keyCodes   KeyCodes
	sequences  map[string]Action
	out        renderer
	logger     *logiface.Logger[logiface.Event]
	limiter    *catrate.Limiter
	hinter     Hinter
	executor   Executor
}

// New constructs an Editor. Nothing is written, see also Editor.ShowPrompt.
//
// All storage is obtained with a single call to the configured allocator,
// see WithStorage, and is never reallocated.
func New(options ...Option) (*Editor, error) {
	cfg, err := resolveOptions(options)
	if err != nil {
		return nil, err
	}

	limiter, err := newLimiter(cfg.rates)
	if err != nil {
		return nil, err
	}

	lineSize := cfg.lineCapacity - 1
	promptSize := cfg.promptCapacity - 1
	size := lineSize + cfg.escapeCapacity + promptSize

	storage, err := cfg.storage(size)
	if err != nil {
		return nil, fmt.Errorf(`%w: %w`, ErrStorage, err)
	}
	if len(storage) < size {
		return nil, fmt.Errorf(`%w: got %d bytes, need %d`, ErrStorage, len(storage), size)
	}

	x := Editor{
		line:      bounded.New(storage[:lineSize]),
		esc:       bounded.New(storage[lineSize : lineSize+cfg.escapeCapacity]),
		prompt:    bounded.New(storage[lineSize+cfg.escapeCapacity : size]),
		keyCodes:  cfg.keyCodes,
		sequences: newSequenceTable(cfg.sequences),
		out:       renderer{w: cfg.output},
		logger:    cfg.logger,
		limiter:   limiter,
		hinter:    cfg.hinter,
		executor:  cfg.executor,
	}

	// validated by resolveOptions
	_ = x.prompt.SetString(cfg.prompt)

	return &x, nil
}

func newLimiter(rates map[time.Duration]int) (limiter *catrate.Limiter, err error) {
	if len(rates) == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(`eddy: diagnostic rates: %v`, r)
		}
	}()
	return catrate.NewLimiter(rates), nil
}

// ShowPrompt writes the prompt.
func (x *Editor) ShowPrompt() error {
	if x == nil {
		return ErrNilEditor
	}
	return x.out.write(x.prompt.Bytes())
}

// Write implements io.Writer, submitting each byte of p, in order, per
// SubmitByte. It stops at the first error, in which case n includes the
// byte that failed.
func (x *Editor) Write(p []byte) (n int, err error) {
	if x == nil {
		return 0, ErrNilEditor
	}
	for i, b := range p {
		if err := x.SubmitByte(b); err != nil {
			return i + 1, err
		}
	}
	return len(p), nil
}

// SetOutput registers the output capability, used to echo all changes.
func (x *Editor) SetOutput(w io.Writer) error {
	if x == nil {
		return ErrNilEditor
	}
	if w == nil {
		return fmt.Errorf(`%w: output`, ErrNilCapability)
	}
	x.out.w = w
	return nil
}

// SetLogger registers the log capability, used for diagnostics.
func (x *Editor) SetLogger(logger *logiface.Logger[logiface.Event]) error {
	if x == nil {
		return ErrNilEditor
	}
	if logger == nil {
		return fmt.Errorf(`%w: logger`, ErrNilCapability)
	}
	x.logger = logger
	return nil
}

// SetHinter registers the hint capability, called on tab.
func (x *Editor) SetHinter(hinter Hinter) error {
	if x == nil {
		return ErrNilEditor
	}
	if !validHinter(hinter) {
		return fmt.Errorf(`%w: hinter`, ErrNilCapability)
	}
	x.hinter = hinter
	return nil
}

// SetExecutor registers the exec capability, called on newline.
func (x *Editor) SetExecutor(executor Executor) error {
	if x == nil {
		return ErrNilEditor
	}
	if !validExecutor(executor) {
		return fmt.Errorf(`%w: executor`, ErrNilCapability)
	}
	x.executor = executor
	return nil
}

// SetPrompt replaces the prompt, which is not written until the next time
// it is shown. It fails with ErrPromptTooLong if it exceeds the prompt
// capacity, less one byte.
func (x *Editor) SetPrompt(prompt string) error {
	if x == nil {
		return ErrNilEditor
	}
	if x.prompt.SetString(prompt) != nil {
		return fmt.Errorf(`%w: %q exceeds %d bytes`, ErrPromptTooLong, prompt, x.prompt.Cap())
	}
	return nil
}

// SetKeyCodes configures the erase key codes.
func (x *Editor) SetKeyCodes(erasePrevious, eraseAtCursor byte) error {
	if x == nil {
		return ErrNilEditor
	}
	x.keyCodes = KeyCodes{
		ErasePrevious: erasePrevious,
		EraseAtCursor: eraseAtCursor,
	}
	return nil
}

// Line returns a copy of the current line.
func (x *Editor) Line() string {
	if x == nil {
		return ``
	}
	return x.line.String()
}

// Len returns the length of the current line, in bytes.
func (x *Editor) Len() int {
	if x == nil {
		return 0
	}
	return x.line.Len()
}

// Cursor returns the cursor position, in [0, Len].
func (x *Editor) Cursor() int {
	if x == nil {
		return 0
	}
	return x.cursor
}

// Collecting reports whether an escape sequence is being accumulated.
func (x *Editor) Collecting() bool {
	return x != nil && x.collecting
}

// Prompt returns the current prompt.
func (x *Editor) Prompt() string {
	if x == nil {
		return ``
	}
	return x.prompt.String()
}

// KeyCodes returns the configured erase key codes.
func (x *Editor) KeyCodes() KeyCodes {
	if x == nil {
		return KeyCodes{}
	}
	return x.keyCodes
}
