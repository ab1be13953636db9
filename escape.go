package eddy

import (
	"fmt"
	"strconv"
)

// Action is the semantic meaning of a recognized escape sequence.
type Action int

const (
	// ActionNone swallows the sequence, without effect.
	ActionNone Action = iota
	// ActionCursorLeft moves the cursor one byte left.
	ActionCursorLeft
	// ActionCursorRight moves the cursor one byte right.
	ActionCursorRight
	// ActionDelete erases the byte at the cursor.
	ActionDelete
	// ActionReservedUp is bound to ESC [ A, and currently has no effect.
	ActionReservedUp
	// ActionReservedDown is bound to ESC [ B, and currently has no effect.
	ActionReservedDown
	// ActionCursorHome moves the cursor to the start of the line.
	ActionCursorHome
	// ActionCursorEnd moves the cursor to the end of the line.
	ActionCursorEnd
	// ActionBackspace erases the byte before the cursor.
	ActionBackspace

	actionCount
)

// Input sequences bound by default.
const (
	SeqCursorLeft  = "\x1b[D"
	SeqCursorRight = "\x1b[C"
	SeqDelete      = "\x1b[3~"
	SeqCursorUp    = "\x1b[A"
	SeqCursorDown  = "\x1b[B"
)

type sequenceBinding struct {
	seq    string
	action Action
}

var defaultSequences = [...]sequenceBinding{
	{SeqCursorLeft, ActionCursorLeft},
	{SeqCursorRight, ActionCursorRight},
	{SeqDelete, ActionDelete},
	{SeqCursorUp, ActionReservedUp},
	{SeqCursorDown, ActionReservedDown},
}

func (x Action) String() string {
	switch x {
	case ActionNone:
		return `None`
	case ActionCursorLeft:
		return `CursorLeft`
	case ActionCursorRight:
		return `CursorRight`
	case ActionDelete:
		return `Delete`
	case ActionReservedUp:
		return `ReservedUp`
	case ActionReservedDown:
		return `ReservedDown`
	case ActionCursorHome:
		return `CursorHome`
	case ActionCursorEnd:
		return `CursorEnd`
	case ActionBackspace:
		return `Backspace`
	default:
		return `Action(` + strconv.Itoa(int(x)) + `)`
	}
}

func (x Action) valid() bool { return x >= 0 && x < actionCount }

// isTerminator reports whether b ends an escape sequence.
func isTerminator(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

func validateSequence(seq []byte) error {
	switch {
	case len(seq) < 2:
		return fmt.Errorf(`%w: %q is too short`, ErrInvalidSequence, seq)
	case seq[0] != CodeESC:
		return fmt.Errorf(`%w: %q must start with ESC`, ErrInvalidSequence, seq)
	case !isTerminator(seq[len(seq)-1]):
		return fmt.Errorf(`%w: %q must end with a terminator`, ErrInvalidSequence, seq)
	}
	for _, b := range seq[1 : len(seq)-1] {
		if isTerminator(b) {
			return fmt.Errorf(`%w: %q terminates early`, ErrInvalidSequence, seq)
		}
	}
	return nil
}

func newSequenceTable(custom []sequenceBinding) map[string]Action {
	m := make(map[string]Action, len(defaultSequences)+len(custom))
	for _, b := range defaultSequences {
		m[b.seq] = b.action
	}
	for _, b := range custom {
		m[b.seq] = b.action
	}
	return m
}

// startEscape resets the accumulator, and begins collecting, with the marker.
func (x *Editor) startEscape() {
	x.esc.Reset()
	_ = x.esc.Append(CodeESC)
	x.collecting = true
}

// collectEscape accumulates b, dispatching the sequence if b terminates it.
func (x *Editor) collectEscape(b byte) error {
	if x.esc.Append(b) != nil {
		x.logEscapeOverflow(b)
	}

	if !isTerminator(b) {
		return nil
	}

	x.collecting = false

	// N.B. string conversion in a map index does not allocate
	action, ok := x.sequences[string(x.esc.Bytes())]
	if !ok {
		x.logUnrecognized(x.esc.Bytes())
		return x.out.write(x.esc.Bytes())
	}

	return x.perform(action)
}

func (x *Editor) perform(action Action) error {
	switch action {
	case ActionCursorLeft:
		return x.cursorLeft()
	case ActionCursorRight:
		return x.cursorRight()
	case ActionDelete:
		return x.deleteForward()
	case ActionCursorHome:
		return x.cursorHome()
	case ActionCursorEnd:
		return x.cursorEnd()
	case ActionBackspace:
		return x.backspace()
	default:
		// ActionNone, ActionReservedUp, ActionReservedDown
		return nil
	}
}
