package codec

import "github.com/protopuf-go/protopuf/wire"

// ZigZag32 applies the zigzag bijection (spec §4.6) and writes the
// result as an unsigned varint, the same bytes VarintU[uint32] would
// produce: small-magnitude signed values, positive or negative, stay short. This
// is the codec behind proto's sint32.
type ZigZag32 struct{}

func (ZigZag32) WireType() wire.Type { return wire.VarintType }

func (ZigZag32) Encode(safe bool, dst []byte, v int32) ([]byte, bool) {
	return wire.AppendVarint(safe, dst, uint64(wire.EncodeZigZag32(v)))
}

func (ZigZag32) Decode(safe bool, src []byte) (int32, []byte, bool) {
	u, rest, ok := wire.ConsumeVarint(safe, src)
	return wire.DecodeZigZag32(uint32(u)), rest, ok
}

func (ZigZag32) EncodeSkip(v int32) int {
	return wire.SizeVarint(uint64(wire.EncodeZigZag32(v)))
}

func (ZigZag32) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeVarint(safe, src)
	return rest, ok
}

// ZigZag64 is ZigZag32's 64-bit counterpart, behind proto's sint64.
type ZigZag64 struct{}

func (ZigZag64) WireType() wire.Type { return wire.VarintType }

func (ZigZag64) Encode(safe bool, dst []byte, v int64) ([]byte, bool) {
	return wire.AppendVarint(safe, dst, wire.EncodeZigZag64(v))
}

func (ZigZag64) Decode(safe bool, src []byte) (int64, []byte, bool) {
	u, rest, ok := wire.ConsumeVarint(safe, src)
	return wire.DecodeZigZag64(u), rest, ok
}

func (ZigZag64) EncodeSkip(v int64) int {
	return wire.SizeVarint(wire.EncodeZigZag64(v))
}

func (ZigZag64) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeVarint(safe, src)
	return rest, ok
}

var (
	_ Codec[int32] = ZigZag32{}
	_ Codec[int64] = ZigZag64{}
)
