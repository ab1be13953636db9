package eddy

import (
	"fmt"
	"io"
	"time"

	"github.com/joeycumines/logiface"
)

const (
	// DefaultLineCapacity is the default line capacity, which includes one
	// reserved byte, i.e. 255 bytes may be entered.
	DefaultLineCapacity = 256

	// DefaultEscapeCapacity is the default maximum number of bytes
	// accumulated for an escape sequence, including the marker.
	DefaultEscapeCapacity = 7

	// DefaultPromptCapacity is the default prompt capacity, which includes
	// one reserved byte, i.e. the prompt may be up to 7 bytes.
	DefaultPromptCapacity = 8

	// DefaultPrompt is the prompt used unless configured otherwise.
	DefaultPrompt = `>`
)

// editorOptions holds configuration options for Editor creation.
type editorOptions struct {
	lineCapacity   int
	escapeCapacity int
	promptCapacity int
	storage        func(size int) ([]byte, error)
	output         io.Writer
	logger         *logiface.Logger[logiface.Event]
	hinter         Hinter
	executor       Executor
	prompt         string
	keyCodes       KeyCodes
	sequences      []sequenceBinding
	rates          map[time.Duration]int
}

// Option configures an Editor instance.
type Option interface {
	applyEditor(*editorOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyEditorFunc func(*editorOptions) error
}

func (x *optionImpl) applyEditor(opts *editorOptions) error {
	return x.applyEditorFunc(opts)
}

// WithLineCapacity sets the line capacity, which includes one reserved byte.
// It must be at least 2.
func WithLineCapacity(n int) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.lineCapacity = n
		return nil
	}}
}

// WithEscapeCapacity sets the maximum number of bytes accumulated for an
// escape sequence, including the marker. It must be at least 1. Bytes beyond
// the capacity are dropped, though collection continues until a terminator.
func WithEscapeCapacity(n int) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.escapeCapacity = n
		return nil
	}}
}

// WithPromptCapacity sets the prompt capacity, which includes one reserved
// byte. It must be at least 2.
func WithPromptCapacity(n int) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.promptCapacity = n
		return nil
	}}
}

// WithStorage configures the allocator used to obtain the editor's storage.
// It is called exactly once, by New, and must return at least size bytes.
// Defaults to make.
func WithStorage(alloc func(size int) ([]byte, error)) Option {
	return &optionImpl{func(opts *editorOptions) error {
		if alloc == nil {
			return fmt.Errorf(`%w: storage`, ErrNilCapability)
		}
		opts.storage = alloc
		return nil
	}}
}

// WithOutput registers the output capability, see also Editor.SetOutput.
func WithOutput(w io.Writer) Option {
	return &optionImpl{func(opts *editorOptions) error {
		if w == nil {
			return fmt.Errorf(`%w: output`, ErrNilCapability)
		}
		opts.output = w
		return nil
	}}
}

// WithLogger registers the log capability, see also Editor.SetLogger.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *editorOptions) error {
		if logger == nil {
			return fmt.Errorf(`%w: logger`, ErrNilCapability)
		}
		opts.logger = logger
		return nil
	}}
}

// WithHinter registers the hint capability, see also Editor.SetHinter.
func WithHinter(hinter Hinter) Option {
	return &optionImpl{func(opts *editorOptions) error {
		if !validHinter(hinter) {
			return fmt.Errorf(`%w: hinter`, ErrNilCapability)
		}
		opts.hinter = hinter
		return nil
	}}
}

// WithExecutor registers the exec capability, see also Editor.SetExecutor.
func WithExecutor(executor Executor) Option {
	return &optionImpl{func(opts *editorOptions) error {
		if !validExecutor(executor) {
			return fmt.Errorf(`%w: executor`, ErrNilCapability)
		}
		opts.executor = executor
		return nil
	}}
}

// WithPrompt sets the initial prompt. Defaults to DefaultPrompt.
func WithPrompt(prompt string) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.prompt = prompt
		return nil
	}}
}

// WithKeyCodes sets the erase key codes. Defaults to DefaultKeyCodes.
func WithKeyCodes(codes KeyCodes) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.keyCodes = codes
		return nil
	}}
}

// WithSequence binds an escape sequence to an action, adding to or
// overriding the default bindings. The sequence must start with the escape
// marker, be no longer than the escape capacity, and contain exactly one
// terminator (a letter or '~'), as its last byte.
func WithSequence(seq []byte, action Action) Option {
	seq = append([]byte(nil), seq...)
	return &optionImpl{func(opts *editorOptions) error {
		if err := validateSequence(seq); err != nil {
			return err
		}
		if !action.valid() {
			return fmt.Errorf(`%w: unknown action %d`, ErrInvalidSequence, int(action))
		}
		opts.sequences = append(opts.sequences, sequenceBinding{seq: string(seq), action: action})
		return nil
	}}
}

// WithDiagnosticRates configures the rate limits applied to logging of
// unrecognized escape sequences, per distinct sequence. A nil or empty map
// disables rate limiting. The rates must be valid per catrate.NewLimiter.
func WithDiagnosticRates(rates map[time.Duration]int) Option {
	return &optionImpl{func(opts *editorOptions) error {
		opts.rates = rates
		return nil
	}}
}

// resolveOptions applies Option instances to editorOptions.
func resolveOptions(opts []Option) (*editorOptions, error) {
	cfg := &editorOptions{
		lineCapacity:   DefaultLineCapacity,
		escapeCapacity: DefaultEscapeCapacity,
		promptCapacity: DefaultPromptCapacity,
		storage:        allocate,
		prompt:         DefaultPrompt,
		keyCodes:       DefaultKeyCodes(),
		rates: map[time.Duration]int{
			time.Second: 4,
			time.Minute: 30,
		},
	}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyEditor(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.lineCapacity < 2 {
		return nil, fmt.Errorf(`%w: line capacity %d`, ErrInvalidCapacity, cfg.lineCapacity)
	}
	if cfg.escapeCapacity < 1 {
		return nil, fmt.Errorf(`%w: escape capacity %d`, ErrInvalidCapacity, cfg.escapeCapacity)
	}
	if cfg.promptCapacity < 2 {
		return nil, fmt.Errorf(`%w: prompt capacity %d`, ErrInvalidCapacity, cfg.promptCapacity)
	}
	if len(cfg.prompt) > cfg.promptCapacity-1 {
		return nil, fmt.Errorf(`%w: %q exceeds %d bytes`, ErrPromptTooLong, cfg.prompt, cfg.promptCapacity-1)
	}
	for _, b := range cfg.sequences {
		if len(b.seq) > cfg.escapeCapacity {
			return nil, fmt.Errorf(`%w: %q exceeds escape capacity %d`, ErrInvalidSequence, b.seq, cfg.escapeCapacity)
		}
	}
	return cfg, nil
}

func allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}
