package fixstr

import (
	"fmt"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/fixstr/internal/utf8scan"
)

// String returns a copy of the content. It implements fmt.Stringer.
func (f *FixStr) String() string {
	return string(f.buf.Bytes())
}

// UnsafeString returns the content as a string without copying. The
// result aliases the storage: it is invalidated by the next mutation
// and by copying the FixStr value. Callers who cannot guarantee the
// lifetime should use String.
func (f *FixStr) UnsafeString() string {
	b := f.buf.Bytes()
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// MarshalText implements encoding.TextMarshaler. It returns a copy of
// the content and never fails.
func (f *FixStr) MarshalText() ([]byte, error) {
	return append([]byte(nil), f.buf.Bytes()...), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It validates b
// and replaces the content with an exact fit: oversized input is
// rejected with ErrCapacityExceeded rather than silently cut. A
// zero-value receiver adopts len(b) as its capacity, since
// unmarshalling is construction.
func (f *FixStr) UnmarshalText(b []byte) error {
	if at, ok := utf8scan.Validate(b); !ok {
		return &InvalidUTF8Error{Offset: at}
	}
	capacity := f.Cap()
	if capacity == 0 {
		if len(b) > MaxCapacity {
			return fmt.Errorf("%w: %d bytes above MaxCapacity %d", ErrCapacityExceeded, len(b), MaxCapacity)
		}
		capacity = len(b)
	}
	next, err := FromBytes(capacity, b)
	if err != nil {
		return err
	}
	*f = next
	return nil
}

// MarshalYAML implements yaml.Marshaler, rendering the content as a
// plain scalar. The yaml.v3 encoder looks the interface up on the
// field value itself, never through its address, so this is the one
// method with a value receiver.
func (f FixStr) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same contract as
// UnmarshalText: exact fit into the receiver's capacity, with a zero
// value adopting the incoming length.
func (f *FixStr) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}
