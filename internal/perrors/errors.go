// Package perrors implements the error taxonomy of this module. The wire,
// codec, field, and message packages report failure only as ok=false;
// package protopuf's Marshal and Unmarshal turn such a failure into one of
// these errors, in safe and unsafe mode alike.
package perrors

import "fmt"

// Sentinel errors for the taxonomy in spec §7. Callers match against these
// with errors.Is; Wrap adds a context message without losing the
// sentinel identity, while New always builds a fresh, unrelated error.
var (
	ErrBufferUnderflow     = New("buffer underflow")
	ErrBufferOverflow      = New("buffer overflow")
	ErrMalformedVarint     = New("malformed varint")
	ErrLengthPrefixOverrun = New("length prefix overrun")
	ErrUnsupportedWireType = New("unsupported wire type")
	ErrWireTypeMismatch    = New("wire type mismatch")
	ErrMalformedMessage    = New("malformed message")
)

// New formats a message and returns an error prefixed with "protopuf: ",
// matching the convention every package in this module uses for errors
// surfaced to callers.
func New(f string, x ...interface{}) error {
	for i := range x {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid double "protopuf: " prefix when chaining
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return "protopuf: " + e.s }

// Wrap annotates kind (one of the sentinels above) with additional context
// while still satisfying errors.Is(result, kind).
func Wrap(kind error, format string, x ...interface{}) error {
	return &wrappedError{kind: kind, msg: fmt.Sprintf(format, x...)}
}

type wrappedError struct {
	kind error
	msg  string
}

func (e *wrappedError) Error() string { return "protopuf: " + e.msg }
func (e *wrappedError) Unwrap() error { return e.kind }
