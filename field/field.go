// Package field binds a field number and repetition kind to an element
// codec and a pair of accessor closures into a declared message struct,
// producing the field-level codec spec §4.11 describes. Composing a
// message out of Codec[M] values (see package message) is this module's
// realization of spec §9's "variadic generic tuples (static dispatch)"
// composition strategy: each field descriptor is generic over both the
// owning message type M and the field's value type T, so the field list
// itself stays a plain Go slice with no reflection involved.
package field

import "github.com/protopuf-go/protopuf/wire"

// Repetition selects how a field's occurrences are framed on the wire
// (spec §3, "Repetition kind").
type Repetition int

const (
	// Singular is a proto3 scalar: the zero value is omitted on encode
	// and produced by decoding an absent field (spec §4.11).
	Singular Repetition = iota
	// OptionalPresence always emits the field when present and never
	// infers absence from a zero value.
	OptionalPresence
	// RepeatedUnpacked emits one tag + value per element.
	RepeatedUnpacked
	// RepeatedPacked emits a single length-delimited block of
	// concatenated scalar encodings; only valid for scalar/bool/enum
	// element codecs (spec §4.11).
	RepeatedPacked
)

// Codec is the field-level contract the message codec composes (spec
// §4.11/§4.12). Number and the accepted wire type(s) are fixed at
// construction time; Encode/Decode operate on the owning message value M
// through the accessor closures bound in at construction.
type Codec[M any] interface {
	// Number is this field's declared field number.
	Number() wire.Number

	// AcceptsWireType reports whether wt is a valid tag wire type for
	// this field occurrence, applying spec §4.12's packed/unpacked
	// tolerance rule (a repeated field accepts both its native wire type
	// and the length-delimited packed form).
	AcceptsWireType(wt wire.Type) bool

	// Encode appends this field's encoding (tag(s) plus payload) for the
	// value currently held in m. A singular field holding its
	// type's zero value, or an absent optional/empty repeated field,
	// appends nothing and returns (dst, true).
	Encode(safe bool, dst []byte, m *M) (rest []byte, ok bool)

	// Decode consumes one field occurrence whose tag (already stripped
	// from src) carried wire type wt, and stores the result into m.
	Decode(safe bool, wt wire.Type, src []byte, m *M) (rest []byte, ok bool)

	// EncodeSkip reports the number of bytes Encode would write for m,
	// without writing them.
	EncodeSkip(m *M) int
}
