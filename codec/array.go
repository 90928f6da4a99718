package codec

import "github.com/protopuf-go/protopuf/wire"

// LengthPrefixed wraps an unframed body codec with the
// varint(length) || body framing common to bytes, strings, packed
// repeated fields, and nested messages (spec §4.10, §4.11 "Nested
// message"). It implements the spec's two-pass encode literally: sum the
// body's EncodeSkip to get L, write varint(L), then encode the body for
// real — no speculative-write-then-patch step is needed because
// EncodeSkip computes the body's size without writing it (see
// SPEC_FULL.md §C). EncodeSkip walks the whole body, so each nesting
// level re-measures its subtree.
func LengthPrefixed[T any](body Codec[T]) Codec[T] {
	return lengthPrefixed[T]{body}
}

type lengthPrefixed[T any] struct{ body Codec[T] }

func (lengthPrefixed[T]) WireType() wire.Type { return wire.BytesType }

func (c lengthPrefixed[T]) Encode(safe bool, dst []byte, v T) ([]byte, bool) {
	l := c.body.EncodeSkip(v)
	dst, ok := wire.AppendVarint(safe, dst, uint64(l))
	if !ok {
		return dst, false
	}
	return c.body.Encode(safe, dst, v)
}

func (c lengthPrefixed[T]) Decode(safe bool, src []byte) (T, []byte, bool) {
	var zero T
	payload, rest, ok := wire.ConsumeBytes(safe, src)
	if !ok {
		return zero, src, false
	}
	v, tail, ok := c.body.Decode(safe, payload)
	if !ok || len(tail) != 0 {
		// Either the body is malformed, or it consumed fewer bytes than
		// the length prefix claimed — an element straddling the
		// boundary, which spec §4.10 calls a fatal malformed-message
		// error rather than silently accepting a short parse.
		return zero, src, false
	}
	return v, rest, true
}

func (c lengthPrefixed[T]) EncodeSkip(v T) int {
	l := c.body.EncodeSkip(v)
	return wire.SizeVarint(uint64(l)) + l
}

func (lengthPrefixed[T]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeBytes(safe, src)
	return rest, ok
}

// sliceBody concatenates an element codec's encodings with no framing of
// its own; Array below frames it with LengthPrefixed to get the full
// length-delimited container codec (spec §4.10).
type sliceBody[T any] struct{ elem Codec[T] }

func (sliceBody[T]) WireType() wire.Type { return wire.BytesType }

func (c sliceBody[T]) Encode(safe bool, dst []byte, v []T) ([]byte, bool) {
	var ok bool
	for _, e := range v {
		dst, ok = c.elem.Encode(safe, dst, e)
		if !ok {
			return dst, false
		}
	}
	return dst, true
}

func (c sliceBody[T]) Decode(safe bool, src []byte) ([]T, []byte, bool) {
	var out []T
	for len(src) > 0 {
		v, rest, ok := c.elem.Decode(safe, src)
		if !ok {
			return nil, src, false
		}
		out = append(out, v)
		src = rest
	}
	return out, src, true
}

func (c sliceBody[T]) EncodeSkip(v []T) int {
	n := 0
	for _, e := range v {
		n += c.elem.EncodeSkip(e)
	}
	return n
}

func (c sliceBody[T]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	var ok bool
	for len(src) > 0 {
		src, ok = c.elem.DecodeSkip(safe, src)
		if !ok {
			return src, false
		}
	}
	return src, true
}

// Array builds the length-delimited container codec for a sequence of
// elem (spec §4.10): varint(content length) || concat(element
// encodings). This is used directly for packed-repeated scalar fields,
// and as the building block String/Bytes specialize for efficiency.
func Array[T any](elem Codec[T]) Codec[[]T] {
	return LengthPrefixed[[]T](sliceBody[T]{elem})
}

// Bytes is the codec for the proto bytes type: a raw length-delimited
// byte string, one wire byte per content byte, copied directly (spec
// §4.10 "Specializations"). It is not the same as Array(VarintU[byte]{}),
// which would varint-encode each byte and so spend two bytes on every
// byte >= 0x80.
type Bytes struct{}

func (Bytes) WireType() wire.Type { return wire.BytesType }

func (Bytes) Encode(safe bool, dst []byte, v []byte) ([]byte, bool) {
	return wire.AppendBytes(safe, dst, v)
}
func (Bytes) Decode(safe bool, src []byte) ([]byte, []byte, bool) {
	v, rest, ok := wire.ConsumeBytes(safe, src)
	if !ok {
		return nil, src, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, rest, true
}
func (Bytes) EncodeSkip(v []byte) int { return wire.SizeBytes(len(v)) }
func (Bytes) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeBytes(safe, src)
	return rest, ok
}

// String is the codec for the proto string type: a length-delimited run
// of UTF-8 bytes. Validity of the UTF-8 is the caller's concern — this
// codec, like the teacher, treats a string field as an opaque byte run
// on the wire.
type String struct{}

func (String) WireType() wire.Type { return wire.BytesType }

func (String) Encode(safe bool, dst []byte, v string) ([]byte, bool) {
	return wire.AppendBytes(safe, dst, []byte(v))
}
func (String) Decode(safe bool, src []byte) (string, []byte, bool) {
	v, rest, ok := wire.ConsumeBytes(safe, src)
	if !ok {
		return "", src, false
	}
	return string(v), rest, true
}
func (String) EncodeSkip(v string) int { return wire.SizeBytes(len(v)) }
func (String) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeBytes(safe, src)
	return rest, ok
}

var (
	_ Codec[[]byte] = Bytes{}
	_ Codec[string] = String{}
	_ Codec[[]int32] = Array[int32](VarintS[int32]{})
)
