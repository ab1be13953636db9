package eddy

// insert writes c at the cursor, shifting any suffix right. It is a no-op if
// the line is full.
func (x *Editor) insert(c byte) error {
	if x.line.Full() {
		x.logLineFull(c)
		return nil
	}

	// cannot fail: cursor <= len < cap
	_ = x.line.InsertAt(x.cursor, c)
	x.cursor++

	if err := x.out.put(c); err != nil {
		return err
	}

	if x.cursor < x.line.Len() {
		// redraw the pushed-right tail, without moving the visible caret
		return x.out.seq(seqSaveCursor, x.line.From(x.cursor), seqRestoreCursor)
	}

	return nil
}

// backspace erases the byte before the cursor.
func (x *Editor) backspace() error {
	if x.cursor == 0 {
		return nil
	}

	err := x.out.write(seqBackspace)

	if x.cursor < x.line.Len() {
		if err == nil {
			err = x.out.seq(seqSaveCursor, x.line.From(x.cursor), seqEraseRestore)
		}
	} else if err == nil {
		err = x.out.write(seqClearDown)
	}

	_ = x.line.RemoveAt(x.cursor - 1)
	x.cursor--

	return err
}

// deleteForward erases the byte at the cursor, which does not move.
func (x *Editor) deleteForward() error {
	if x.cursor == x.line.Len() {
		return nil
	}

	err := x.out.seq(seqSaveCursor, x.line.From(x.cursor+1), seqEraseRestore)

	_ = x.line.RemoveAt(x.cursor)

	return err
}

func (x *Editor) cursorLeft() error {
	if x.cursor == 0 {
		return nil
	}
	x.cursor--
	return x.out.write(seqBackspace)
}

func (x *Editor) cursorRight() error {
	if x.cursor == x.line.Len() {
		return nil
	}
	x.cursor++
	return x.out.write(seqCursorRight)
}

func (x *Editor) cursorHome() error {
	for x.cursor > 0 {
		if err := x.cursorLeft(); err != nil {
			return err
		}
	}
	return nil
}

func (x *Editor) cursorEnd() error {
	for x.cursor < x.line.Len() {
		if err := x.cursorRight(); err != nil {
			return err
		}
	}
	return nil
}
