package eddy

const (
	// CodeBS is the ASCII backspace code (^H).
	CodeBS byte = 0x08
	// CodeESC is the escape marker, which starts a control sequence.
	CodeESC byte = 0x1B
	// CodeDEL is the ASCII delete code (^?).
	CodeDEL byte = 0x7F
	// CodeTab triggers the Hinter.
	CodeTab byte = '\t'
	// CodeNewline triggers the Executor.
	CodeNewline byte = '\n'
)

// KeyCodes configures which raw input codes erase characters. Terminals
// disagree on which physical key sends which code.
type KeyCodes struct {
	// ErasePrevious erases the character before the cursor.
	ErasePrevious byte
	// EraseAtCursor erases the character at the cursor.
	EraseAtCursor byte
}

// DefaultKeyCodes returns the default mapping. Note that it is the reverse
// of the common convention: DEL erases the previous character, and BS
// erases the character at the cursor.
func DefaultKeyCodes() KeyCodes {
	return KeyCodes{
		ErasePrevious: CodeDEL,
		EraseAtCursor: CodeBS,
	}
}
