package fixstr

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/fixstr/internal/bytebuf"
	"github.com/iw2rmb/fixstr/internal/utf8scan"
)

// MaxCapacity is the largest capacity a FixStr can be created with.
const MaxCapacity = bytebuf.Max

// FixStr is a fixed-capacity string stored inline. The zero value is
// an empty string with capacity 0; use New or a From constructor to
// choose a capacity.
type FixStr struct {
	buf bytebuf.Buffer
}

// New returns an empty FixStr with the given capacity. It panics if
// capacity is negative or above MaxCapacity; the capacity is part of
// the caller's design, not runtime input.
func New(capacity int) FixStr {
	buf, err := bytebuf.New(capacity)
	if err != nil {
		panic(fmt.Sprintf("fixstr: capacity %d out of range [0, %d]", capacity, MaxCapacity))
	}
	return FixStr{buf: buf}
}

// FromString returns a FixStr holding the longest prefix of s that is
// well-formed UTF-8, fits in capacity, and ends on a code-point
// boundary. Oversized or partially invalid input is cut, never
// rejected; use FromStringExact to detect overflow.
func FromString(capacity int, s string) FixStr {
	f := New(capacity)
	f.PushString(s)
	return f
}

// FromStringExact returns a FixStr holding exactly s, or
// ErrCapacityExceeded if s does not fit, or an *InvalidUTF8Error if s
// is not well-formed.
func FromStringExact(capacity int, s string) (FixStr, error) {
	f := New(capacity)
	if len(s) > capacity {
		return FixStr{}, fmt.Errorf("%w: %d bytes into capacity %d", ErrCapacityExceeded, len(s), capacity)
	}
	if at, ok := utf8scan.ValidateString(s); !ok {
		return FixStr{}, &InvalidUTF8Error{Offset: at}
	}
	f.mustWrite(0, s, len(s))
	return f, nil
}

// MustFromString is FromStringExact, panicking on error. Intended for
// literals whose fit is known at the call site.
func MustFromString(capacity int, s string) FixStr {
	f, err := FromStringExact(capacity, s)
	if err != nil {
		panic(fmt.Sprintf("fixstr: %q (len=%d) does not fit capacity %d: %v", s, len(s), capacity, err))
	}
	return f
}

// FromBytes validates b as UTF-8 and returns a FixStr holding a copy
// of it, ErrCapacityExceeded if b does not fit, or an
// *InvalidUTF8Error locating the first malformed sequence.
func FromBytes(capacity int, b []byte) (FixStr, error) {
	if at, ok := utf8scan.Validate(b); !ok {
		return FixStr{}, &InvalidUTF8Error{Offset: at}
	}
	f := New(capacity)
	if len(b) > capacity {
		return FixStr{}, fmt.Errorf("%w: %d bytes into capacity %d", ErrCapacityExceeded, len(b), capacity)
	}
	if err := f.buf.WriteAt(0, b); err != nil {
		panic(err) // unreachable after the fit check
	}
	f.setLen(len(b))
	return f, nil
}

// Len returns the content length in bytes.
func (f *FixStr) Len() int { return f.buf.Len() }

// Cap returns the fixed capacity in bytes.
func (f *FixStr) Cap() int { return f.buf.Cap() }

// Available returns the unused capacity in bytes.
func (f *FixStr) Available() int { return f.buf.Cap() - f.buf.Len() }

// IsEmpty reports whether the content is empty.
func (f *FixStr) IsEmpty() bool { return f.buf.Len() == 0 }

// CharLen returns the content length in code points. For non-ASCII
// content this differs from Len.
func (f *FixStr) CharLen() int { return utf8.RuneCount(f.buf.Bytes()) }

// Bytes returns the content as a read-only byte view, without copying.
// The view is invalidated by the next mutation; callers must not write
// through it.
func (f *FixStr) Bytes() []byte { return f.buf.Bytes() }

// mustWrite commits a string write plus length update that the caller
// has already bounds-checked. A failure here means a broken invariant,
// not a user error.
func (f *FixStr) mustWrite(off int, s string, newLen int) {
	if err := f.buf.WriteStringAt(off, s); err != nil {
		panic(err)
	}
	f.setLen(newLen)
}

func (f *FixStr) setLen(n int) {
	if err := f.buf.SetLen(n); err != nil {
		panic(err)
	}
}
