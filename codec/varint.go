package codec

import "github.com/protopuf-go/protopuf/wire"

// Unsigned is the constraint satisfied by every unsigned integer width
// this library's varint codec can target.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the constraint satisfied by every signed integer width this
// library's varint codec can target.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// VarintU is the LEB128 codec over an unsigned integer type (spec §4.5).
// The signed varint, zigzag and bool codecs use the same wire varint
// encoding (wire.AppendVarint/ConsumeVarint) directly, and the enum
// codecs forward to VarintS.
type VarintU[T Unsigned] struct{}

func (VarintU[T]) WireType() wire.Type { return wire.VarintType }

func (VarintU[T]) Encode(safe bool, dst []byte, v T) ([]byte, bool) {
	return wire.AppendVarint(safe, dst, uint64(v))
}

func (VarintU[T]) Decode(safe bool, src []byte) (T, []byte, bool) {
	v, rest, ok := wire.ConsumeVarint(safe, src)
	return T(v), rest, ok
}

func (VarintU[T]) EncodeSkip(v T) int {
	return wire.SizeVarint(uint64(v))
}

func (VarintU[T]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeVarint(safe, src)
	return rest, ok
}

// VarintS is the signed varint codec: a thin wrapper that bit-casts the
// signed value to uint64 before writing it as an unsigned varint
// (spec §4.5, "Signed convenience"). Negative 32-bit values
// sign-extend to 64 bits first, so they consume the full 10 bytes that
// the Protocol Buffers wire format expects for a negative int32.
type VarintS[T Signed] struct{}

func (VarintS[T]) WireType() wire.Type { return wire.VarintType }

func (VarintS[T]) Encode(safe bool, dst []byte, v T) ([]byte, bool) {
	return wire.AppendVarint(safe, dst, uint64(int64(v)))
}

func (VarintS[T]) Decode(safe bool, src []byte) (T, []byte, bool) {
	v, rest, ok := wire.ConsumeVarint(safe, src)
	return T(int64(v)), rest, ok
}

func (VarintS[T]) EncodeSkip(v T) int {
	return wire.SizeVarint(uint64(int64(v)))
}

func (VarintS[T]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeVarint(safe, src)
	return rest, ok
}

var (
	_ Codec[uint32] = VarintU[uint32]{}
	_ Codec[uint64] = VarintU[uint64]{}
	_ Codec[int32]  = VarintS[int32]{}
	_ Codec[int64]  = VarintS[int64]{}
)
