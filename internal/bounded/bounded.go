// Package bounded implements a fixed-capacity byte sequence, with explicit
// insert-at and remove-at operations.
//
// The backing storage is provided once, at construction, and is never
// reallocated. Operations that would exceed the capacity fail with
// [ErrOverflow], leaving the contents unchanged.
package bounded

import (
	"errors"
)

var (
	// ErrOverflow indicates that an operation would exceed the capacity.
	ErrOverflow = errors.New(`bounded: capacity exceeded`)

	// ErrIndex indicates an index outside the valid range for the operation.
	ErrIndex = errors.New(`bounded: index out of range`)
)

// Bytes is a bounded sequence of bytes. The zero value has a capacity of 0.
type Bytes struct {
	buf []byte
	n   int
}

// New wraps storage, which will be used as the backing array. The capacity
// is len(storage). The initial length is 0.
func New(storage []byte) *Bytes {
	return &Bytes{buf: storage[:len(storage):len(storage)]}
}

// Len returns the number of bytes currently stored.
func (x *Bytes) Len() int { return x.n }

// Cap returns the maximum number of bytes that may be stored.
func (x *Bytes) Cap() int { return len(x.buf) }

// Full reports whether Len == Cap.
func (x *Bytes) Full() bool { return x.n == len(x.buf) }

// Bytes returns the stored bytes. The slice aliases the backing storage, and
// is only valid until the next mutation.
func (x *Bytes) Bytes() []byte { return x.buf[:x.n] }

// From returns the stored bytes starting at i, clamped to [0, Len].
func (x *Bytes) From(i int) []byte {
	if i < 0 {
		i = 0
	} else if i > x.n {
		i = x.n
	}
	return x.buf[i:x.n]
}

// String returns a copy of the stored bytes, as a string.
func (x *Bytes) String() string { return string(x.buf[:x.n]) }

// At returns the byte at index i, which must be in [0, Len).
func (x *Bytes) At(i int) byte { return x.buf[:x.n][i] }

// Reset sets the length to 0.
func (x *Bytes) Reset() { x.n = 0 }

// Append adds b to the end of the sequence.
func (x *Bytes) Append(b byte) error {
	if x.n == len(x.buf) {
		return ErrOverflow
	}
	x.buf[x.n] = b
	x.n++
	return nil
}

// InsertAt inserts b at index i, shifting [i, Len) one slot to the right.
// The index must be in [0, Len].
func (x *Bytes) InsertAt(i int, b byte) error {
	if i < 0 || i > x.n {
		return ErrIndex
	}
	if x.n == len(x.buf) {
		return ErrOverflow
	}
	copy(x.buf[i+1:x.n+1], x.buf[i:x.n])
	x.buf[i] = b
	x.n++
	return nil
}

// RemoveAt removes the byte at index i, shifting (i, Len) one slot to the
// left. The index must be in [0, Len).
func (x *Bytes) RemoveAt(i int) error {
	if i < 0 || i >= x.n {
		return ErrIndex
	}
	copy(x.buf[i:x.n-1], x.buf[i+1:x.n])
	x.n--
	return nil
}

// Set replaces the contents with b. If b doesn't fit, the contents are
// unchanged, and ErrOverflow is returned.
func (x *Bytes) Set(b []byte) error {
	if len(b) > len(x.buf) {
		return ErrOverflow
	}
	x.n = copy(x.buf, b)
	return nil
}

// SetString is [Bytes.Set] for a string.
func (x *Bytes) SetString(s string) error {
	if len(s) > len(x.buf) {
		return ErrOverflow
	}
	x.n = copy(x.buf, s)
	return nil
}

// Equal reports whether the stored bytes equal b.
func (x *Bytes) Equal(b []byte) bool {
	return string(x.buf[:x.n]) == string(b)
}
