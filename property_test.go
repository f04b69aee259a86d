package fixstr

import (
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPrefix returns the longest well-formed prefix of s.
func validPrefix(s string) string {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return s[:i]
		}
		i += size
	}
	return s
}

func TestQuick_FromStringInvariants(t *testing.T) {
	condition := func(s string, rawCap uint8) bool {
		capacity := int(rawCap)
		f := FromString(capacity, s)

		if !assert.LessOrEqual(t, f.Len(), capacity) {
			return false
		}
		if !assert.True(t, utf8.Valid(f.Bytes()), "content must stay well-formed") {
			return false
		}

		// The result is always a boundary-aligned prefix of the valid
		// prefix of the input, and the longest one that fits.
		valid := validPrefix(s)
		if !assert.True(t, strings.HasPrefix(valid, f.String())) {
			return false
		}
		if f.Len() < capacity && f.Len() < len(valid) {
			// Room was left over: the next code point must not fit.
			_, size := utf8.DecodeRuneInString(valid[f.Len():])
			if !assert.Greater(t, f.Len()+size, capacity) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestQuick_RoundTrip(t *testing.T) {
	condition := func(s string) bool {
		if !utf8.ValidString(s) || len(s) > MaxCapacity {
			return true
		}
		f := FromString(len(s), s)
		return assert.Equal(t, s, f.String())
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestQuick_PushSaturation(t *testing.T) {
	condition := func(parts []string, rawCap uint8) bool {
		capacity := int(rawCap)
		f := New(capacity)

		total := 0
		for _, p := range parts {
			n := f.PushString(p)
			total += n
			if !assert.LessOrEqual(t, f.Len(), capacity) {
				return false
			}
			if !assert.True(t, utf8.Valid(f.Bytes())) {
				return false
			}
		}
		return assert.Equal(t, f.Len(), total, "appended bytes must account for the final length")
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestQuick_TruncateKeepsBoundaries(t *testing.T) {
	condition := func(s string, at uint8) bool {
		f := FromString(MaxCapacity, s)
		before := f.String()

		err := f.Truncate(int(at))
		if err != nil {
			// A refused truncation must not change anything.
			return assert.Equal(t, before, f.String())
		}
		if !assert.True(t, utf8.Valid(f.Bytes())) {
			return false
		}
		return assert.True(t, strings.HasPrefix(before, f.String()))
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestCopyIndependence_AfterEveryOp(t *testing.T) {
	f := FromString(16, "héllo wörld")
	snap := f
	want := snap.String()

	f.PushString("!!")
	require.Equal(t, want, snap.String())

	_, _ = f.PopRune()
	require.Equal(t, want, snap.String())

	require.NoError(t, f.Truncate(0))
	require.Equal(t, want, snap.String())

	f.Clear()
	require.Equal(t, want, snap.String())
}
