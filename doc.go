// Package eddy implements an embeddable, single-line, interactive editor for
// byte-oriented (VT100) terminals.
//
// An [Editor] consumes raw input, one byte at a time, via [Editor.SubmitByte]
// (or [Editor.Write]), maintaining an editable command line. It echoes the
// minimal VT100 control sequences necessary to keep the visible line in sync
// with its internal buffer, to the configured output.
//
// All behavior that depends on the host is injected, as capabilities:
//
//   - output: an [io.Writer], connected to the terminal
//   - log: a [logiface.Logger], for diagnostics (optional)
//   - hint: a [Hinter], called on tab, which may complete the line
//   - exec: an [Executor], called on newline, with the finished line
//
// Recognized input sequences are ESC [ D (left), ESC [ C (right), and
// ESC [ 3 ~ (delete). ESC [ A and ESC [ B are recognized, but currently
// have no effect. Unrecognized sequences are echoed back, verbatim.
//
// An Editor is not safe for concurrent use. All storage is allocated by
// [New]. Editing does not allocate, unless debug logging is enabled.
package eddy
