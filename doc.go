// Package fixstr implements a fixed-capacity string stored inline,
// without heap indirection.
//
// A FixStr holds up to Cap() bytes of well-formed UTF-8 chosen at
// construction time (at most MaxCapacity). Three invariants hold
// between any two public operations:
//
//   - Len() <= Cap()
//   - the content is well-formed UTF-8
//   - Len() falls on a code-point boundary; no operation leaves a
//     truncated multi-byte sequence at the end of the content
//
// Every mutation either commits fully or leaves the value untouched.
// The lenient operations (FromString, PushString) absorb overflow by
// cutting at the nearest code-point boundary that fits; the exact
// variants (FromStringExact, PushStringExact, FromBytes) reject
// oversized input with ErrCapacityExceeded instead.
//
// Unlike text types in some languages, a Go string carries no validity
// guarantee, so the lenient constructors also stop at the first
// structurally invalid byte; the checked constructors report it as an
// InvalidUTF8Error.
//
// FixStr is a plain value: assignment duplicates the storage, and the
// copies are fully independent. One instance must not be mutated from
// multiple goroutines; share across goroutines by copying. Do not
// compare values with ==, which sees stale bytes beyond Len(); use
// Equal or Compare.
package fixstr
