// Package codec implements the composable codec algebra of spec §2-§4: a
// shared Codec[T] contract, the primitive scalar codecs built on package
// wire, and the length-delimited array codec used for bytes, strings, and
// packed-repeated scalars.
//
// Every codec here is a stateless value (spec §3: "Static; no runtime
// state"): the primitive codecs are zero-size, and the composite ones hold
// only the codecs they compose. Composing codecs is just composing Go
// values, with no registry or reflection involved.
package codec

import "github.com/protopuf-go/protopuf/wire"

// Codec is the contract every primitive and composite codec in this
// module satisfies (spec §3, "Codec C"). safe selects the bounds-checked
// or unchecked code path (spec §4.2); the two must differ only in the
// presence of checks, never in the bytes produced on valid input (spec §8
// law 3).
type Codec[T any] interface {
	// WireType reports the wire type a field carrying this codec's value
	// tags its occurrences with (spec §3 "Wire types"). The field layer
	// uses this to build the tag once, up front, rather than asking the
	// caller to keep a codec and its wire type in sync by hand.
	WireType() wire.Type

	// Encode writes v into dst and returns the unconsumed suffix. In safe
	// mode, ok is false if dst is too short, and nothing is written past
	// the end of dst; a primitive codec leaves dst untouched on failure,
	// while a composite codec may already have written a prefix of its
	// encoding.
	Encode(safe bool, dst []byte, v T) (rest []byte, ok bool)

	// Decode reads a T from the front of src and returns the unconsumed
	// suffix. In safe mode, ok is false on any malformed or truncated
	// input.
	Decode(safe bool, src []byte) (v T, rest []byte, ok bool)

	// EncodeSkip reports how many bytes Encode(_, _, v) would write,
	// without writing them — used for the two-pass length computation of
	// length-delimited containers (spec §4.10) and to size a whole
	// message's output buffer up front.
	EncodeSkip(v T) int

	// DecodeSkip advances past one encoded T at the front of src without
	// materializing it (spec §4.9's skipper capability).
	DecodeSkip(safe bool, src []byte) (rest []byte, ok bool)
}
