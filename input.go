package eddy

// SubmitByte feeds a single input byte to the editor, which is classified,
// in priority order, as:
//
//  1. KeyCodes.ErasePrevious: erase the byte before the cursor
//  2. KeyCodes.EraseAtCursor: erase the byte at the cursor
//  3. any byte, while collecting an escape sequence
//  4. CodeESC: start collecting an escape sequence
//  5. CodeTab: call the Hinter
//  6. CodeNewline: call the Executor, then start a new line
//  7. anything else: insert at the cursor
//
// Erase keys are therefore recognized even mid-sequence. Bytes that don't
// fit are dropped. Errors are returned if the required capability is not
// registered, or if writing to the output fails, in which case the editor
// state still reflects the byte, though the output may be incomplete.
func (x *Editor) SubmitByte(b byte) error {
	if x == nil {
		return ErrNilEditor
	}
	switch {
	case b == x.keyCodes.ErasePrevious:
		return x.backspace()
	case b == x.keyCodes.EraseAtCursor:
		return x.deleteForward()
	case x.collecting:
		return x.collectEscape(b)
	case b == CodeESC:
		x.startEscape()
		return nil
	case b == CodeTab:
		return x.hint()
	case b == CodeNewline:
		return x.submit()
	default:
		return x.insert(b)
	}
}
