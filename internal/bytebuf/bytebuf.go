// Package bytebuf implements a fixed-capacity inline byte buffer.
//
// Buffer is a plain value: assignment duplicates the storage and the
// counters, so copies never share backing bytes. It has no text
// semantics; callers are responsible for what the bytes mean.
package bytebuf

import "errors"

// Max is the largest capacity a Buffer can be created with. The used
// length is tracked in a single byte, so capacities above 255 are not
// representable.
const Max = 255

// ErrOutOfBounds reports a write or length outside the buffer's
// capacity. It never escapes the public fixstr surface while the
// container invariants hold.
var ErrOutOfBounds = errors.New("bytebuf: out of bounds")

// Buffer is inline byte storage with a caller-chosen capacity.
// The zero value is an empty buffer with capacity 0.
type Buffer struct {
	data [Max]byte
	used uint8
	cap  uint8
}

// New returns an empty Buffer with the given capacity.
func New(capacity int) (Buffer, error) {
	if capacity < 0 || capacity > Max {
		return Buffer{}, ErrOutOfBounds
	}
	return Buffer{cap: uint8(capacity)}, nil
}

// WriteAt copies p into the storage starting at off. It fails without
// touching the storage if the write would exceed the capacity. The
// used length is not changed; callers commit it via SetLen.
func (b *Buffer) WriteAt(off int, p []byte) error {
	if off < 0 || off+len(p) > int(b.cap) {
		return ErrOutOfBounds
	}
	copy(b.data[off:off+len(p)], p)
	return nil
}

// WriteStringAt is WriteAt for strings, avoiding an intermediate
// byte-slice copy of s.
func (b *Buffer) WriteStringAt(off int, s string) error {
	if off < 0 || off+len(s) > int(b.cap) {
		return ErrOutOfBounds
	}
	copy(b.data[off:off+len(s)], s)
	return nil
}

// SetLen sets the used-length counter. Callers must ensure n marks a
// position consistent with whatever encoding they store.
func (b *Buffer) SetLen(n int) error {
	if n < 0 || n > int(b.cap) {
		return ErrOutOfBounds
	}
	b.used = uint8(n)
	return nil
}

// Bytes returns the used portion of the storage without copying.
// The view is invalidated by the next WriteAt or SetLen.
func (b *Buffer) Bytes() []byte { return b.data[:b.used] }

// Len returns the number of bytes in use.
func (b *Buffer) Len() int { return int(b.used) }

// Cap returns the fixed capacity chosen at construction.
func (b *Buffer) Cap() int { return int(b.cap) }
