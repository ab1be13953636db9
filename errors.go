package eddy

import (
	"errors"
)

var (
	// ErrNilEditor is returned by methods called on a nil *Editor.
	ErrNilEditor = errors.New(`eddy: nil editor`)

	// ErrNilCapability is returned when registering a nil capability.
	ErrNilCapability = errors.New(`eddy: nil capability`)

	// ErrNoOutput is returned when output is required, but none is registered.
	ErrNoOutput = errors.New(`eddy: output not registered`)

	// ErrNoHinter is returned on tab, if no Hinter is registered.
	ErrNoHinter = errors.New(`eddy: hinter not registered`)

	// ErrNoExecutor is returned on newline, if no Executor is registered.
	ErrNoExecutor = errors.New(`eddy: executor not registered`)

	// ErrInvalidCapacity is returned by New, for unusable capacities.
	ErrInvalidCapacity = errors.New(`eddy: invalid capacity`)

	// ErrStorage is returned by New, if storage could not be obtained.
	ErrStorage = errors.New(`eddy: storage unavailable`)

	// ErrPromptTooLong is returned if the prompt does not fit the prompt
	// capacity, which includes one reserved byte.
	ErrPromptTooLong = errors.New(`eddy: prompt too long`)

	// ErrInvalidSequence is returned by New, for escape sequence bindings
	// that could never be matched.
	ErrInvalidSequence = errors.New(`eddy: invalid escape sequence`)
)
