package codec

import "github.com/protopuf-go/protopuf/wire"

// Enum32 encodes an enumeration whose declared underlying width is 32
// bits as a signed varint (spec §4.8). Decoding yields whatever value is
// representable in E, including values no name in the enumeration
// declares — required for forward compatibility with producers that know
// about newer enumerants.
type Enum32[E ~int32] struct{}

func (Enum32[E]) WireType() wire.Type { return wire.VarintType }

func (Enum32[E]) Encode(safe bool, dst []byte, v E) ([]byte, bool) {
	return VarintS[int32]{}.Encode(safe, dst, int32(v))
}
func (Enum32[E]) Decode(safe bool, src []byte) (E, []byte, bool) {
	v, rest, ok := VarintS[int32]{}.Decode(safe, src)
	return E(v), rest, ok
}
func (Enum32[E]) EncodeSkip(v E) int {
	return VarintS[int32]{}.EncodeSkip(int32(v))
}
func (Enum32[E]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	return VarintS[int32]{}.DecodeSkip(safe, src)
}

// Enum64 is Enum32's 64-bit-underlying-width counterpart.
type Enum64[E ~int64] struct{}

func (Enum64[E]) WireType() wire.Type { return wire.VarintType }

func (Enum64[E]) Encode(safe bool, dst []byte, v E) ([]byte, bool) {
	return VarintS[int64]{}.Encode(safe, dst, int64(v))
}
func (Enum64[E]) Decode(safe bool, src []byte) (E, []byte, bool) {
	v, rest, ok := VarintS[int64]{}.Decode(safe, src)
	return E(v), rest, ok
}
func (Enum64[E]) EncodeSkip(v E) int {
	return VarintS[int64]{}.EncodeSkip(int64(v))
}
func (Enum64[E]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	return VarintS[int64]{}.DecodeSkip(safe, src)
}

type exampleEnum int32

var _ Codec[exampleEnum] = Enum32[exampleEnum]{}
