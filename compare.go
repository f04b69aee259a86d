package fixstr

import "bytes"

// Equal reports whether f and o hold the same content. Capacity and
// stale bytes beyond Len play no part, so values of different
// capacities with equal content are equal.
func (f *FixStr) Equal(o *FixStr) bool {
	return bytes.Equal(f.buf.Bytes(), o.buf.Bytes())
}

// Compare orders f and o bytewise over their content, returning
// -1, 0, or +1 as f sorts before, equal to, or after o. Bytewise
// order over UTF-8 coincides with code-point order.
func (f *FixStr) Compare(o *FixStr) int {
	return bytes.Compare(f.buf.Bytes(), o.buf.Bytes())
}
