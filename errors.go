package fixstr

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded reports that an exact-fit construction or append
// was given more bytes than the remaining capacity. The lenient
// variants (FromString, PushString) absorb overflow by truncation and
// never return it.
var ErrCapacityExceeded = errors.New("fixstr: capacity exceeded")

// InvalidUTF8Error reports input that is not well-formed UTF-8.
// Offset is the byte offset of the first invalid sequence.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("fixstr: invalid UTF-8 at byte %d", e.Offset)
}

// BoundaryError reports a truncation length that does not fall on a
// code-point boundary of the current content.
type BoundaryError struct {
	Offset int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("fixstr: byte %d is not a code-point boundary", e.Offset)
}
