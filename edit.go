package fixstr

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/fixstr/internal/utf8scan"
)

// PushString appends the longest prefix of s that is well-formed,
// fits in the remaining capacity, and ends on a code-point boundary.
// It returns the number of bytes appended; 0 means nothing fit (or s
// started with an invalid byte), which is a normal terminal state for
// a full buffer, not an error. The append is atomic: either the whole
// prefix is committed or the value is untouched.
func (f *FixStr) PushString(s string) int {
	if at, ok := utf8scan.ValidateString(s); !ok {
		s = s[:at]
	}
	n := len(s)
	if avail := f.Available(); n > avail {
		n = utf8scan.FloorBoundaryString(s, avail)
	}
	if n == 0 {
		return 0
	}
	f.mustWrite(f.Len(), s[:n], f.Len()+n)
	return n
}

// PushStringExact appends the whole of s or nothing: it returns
// ErrCapacityExceeded when s does not fit in the remaining capacity,
// and an *InvalidUTF8Error when s is not well-formed.
func (f *FixStr) PushStringExact(s string) error {
	if at, ok := utf8scan.ValidateString(s); !ok {
		return &InvalidUTF8Error{Offset: at}
	}
	if len(s) > f.Available() {
		return fmt.Errorf("%w: %d bytes into %d remaining", ErrCapacityExceeded, len(s), f.Available())
	}
	f.mustWrite(f.Len(), s, f.Len()+len(s))
	return nil
}

// PushRune appends a single code point and reports whether it fit.
// Invalid runes are encoded as U+FFFD, matching the rest of the
// standard library.
func (f *FixStr) PushRune(r rune) bool {
	var scratch [utf8.UTFMax]byte
	enc := utf8.AppendRune(scratch[:0], r)
	if len(enc) > f.Available() {
		return false
	}
	if err := f.buf.WriteAt(f.Len(), enc); err != nil {
		panic(err)
	}
	f.setLen(f.Len() + len(enc))
	return true
}

// PopRune removes and returns the last code point of the content.
// It reports false on an empty value.
func (f *FixStr) PopRune() (rune, bool) {
	if f.IsEmpty() {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(f.buf.Bytes())
	f.setLen(f.Len() - size)
	return r, true
}

// Truncate shortens the content to n bytes. A length at or above Len
// is a no-op. It returns a *BoundaryError when n is negative or falls
// inside a multi-byte code point; the content is then unchanged. Bytes
// beyond the new length are not cleared.
func (f *FixStr) Truncate(n int) error {
	if n >= f.Len() {
		return nil
	}
	if n < 0 || !utf8scan.IsBoundary(f.buf.Bytes(), n) {
		return &BoundaryError{Offset: n}
	}
	f.setLen(n)
	return nil
}

// Clear empties the content. The capacity is unchanged.
func (f *FixStr) Clear() {
	f.setLen(0)
}
