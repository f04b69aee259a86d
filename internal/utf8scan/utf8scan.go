// Package utf8scan provides stateless structural analysis of UTF-8
// byte spans: validation, code-point sizing, and boundary arithmetic.
//
// Offsets are byte offsets. A boundary is an offset that does not fall
// inside a multi-byte code-point encoding.
package utf8scan

import "unicode/utf8"

// Validate scans p once and reports the byte offset of the first
// structurally invalid sequence. invalidAt is -1 when p is well-formed.
func Validate(p []byte) (invalidAt int, ok bool) {
	for i := 0; i < len(p); {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return -1, true
}

// ValidateString is Validate for strings, which avoids copying the
// input into a byte slice.
func ValidateString(s string) (invalidAt int, ok bool) {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, false
		}
		i += size
	}
	return -1, true
}

// RuneLenAt returns the byte length (1..4) of the code point starting
// at off. It reports false when off is out of range, the byte at off is
// not a valid lead byte, or the continuation bytes are missing or
// malformed.
func RuneLenAt(p []byte, off int) (int, bool) {
	if off < 0 || off >= len(p) {
		return 0, false
	}
	r, size := utf8.DecodeRune(p[off:])
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return size, true
}

// IsBoundary reports whether off is a code-point boundary of p.
// Both ends of the span count as boundaries.
func IsBoundary(p []byte, off int) bool {
	if off == 0 || off == len(p) {
		return true
	}
	if off < 0 || off > len(p) {
		return false
	}
	return utf8.RuneStart(p[off])
}

// FloorBoundary returns the nearest boundary at or below off. Offsets
// outside [0, len(p)] are clamped first. p must be well-formed UTF-8;
// a multi-byte encoding is at most utf8.UTFMax bytes, so at most three
// steps back are ever needed.
func FloorBoundary(p []byte, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(p) {
		return len(p)
	}
	for off > 0 && !utf8.RuneStart(p[off]) {
		off--
	}
	return off
}

// FloorBoundaryString is FloorBoundary for strings.
func FloorBoundaryString(s string, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(s) {
		return len(s)
	}
	for off > 0 && !utf8.RuneStart(s[off]) {
		off--
	}
	return off
}
