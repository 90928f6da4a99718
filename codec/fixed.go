package codec

import (
	"math"

	"github.com/protopuf-go/protopuf/wire"
)

// Fixed32U is the little-endian fixed_width codec for uint32 (proto's
// fixed32). Fixed32I and Float32 below reinterpret the same four bytes
// for sfixed32 and float, matching the fixed32Types grouping (FIXED32,
// SFIXED32, FLOAT) that every protobuf wire implementation shares.
type Fixed32U struct{}

func (Fixed32U) WireType() wire.Type { return wire.Fixed32Type }

func (Fixed32U) Encode(safe bool, dst []byte, v uint32) ([]byte, bool) {
	return wire.AppendFixed32(safe, dst, v)
}
func (Fixed32U) Decode(safe bool, src []byte) (uint32, []byte, bool) {
	return wire.ConsumeFixed32(safe, src)
}
func (Fixed32U) EncodeSkip(uint32) int { return 4 }
func (Fixed32U) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 4 {
		return src, false
	}
	return src[4:], true
}

// Fixed32I is proto's sfixed32: the two's-complement bit pattern of an
// int32, little-endian.
type Fixed32I struct{}

func (Fixed32I) WireType() wire.Type { return wire.Fixed32Type }

func (Fixed32I) Encode(safe bool, dst []byte, v int32) ([]byte, bool) {
	return wire.AppendFixed32(safe, dst, uint32(v))
}
func (Fixed32I) Decode(safe bool, src []byte) (int32, []byte, bool) {
	u, rest, ok := wire.ConsumeFixed32(safe, src)
	return int32(u), rest, ok
}
func (Fixed32I) EncodeSkip(int32) int { return 4 }
func (Fixed32I) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 4 {
		return src, false
	}
	return src[4:], true
}

// Float32 encodes the IEEE 754 bit pattern of a float32 (proto's float).
// NaN and infinity payloads round-trip bitwise; this codec never
// canonicalizes them (spec §4.4).
type Float32 struct{}

func (Float32) WireType() wire.Type { return wire.Fixed32Type }

func (Float32) Encode(safe bool, dst []byte, v float32) ([]byte, bool) {
	return wire.AppendFixed32(safe, dst, math.Float32bits(v))
}
func (Float32) Decode(safe bool, src []byte) (float32, []byte, bool) {
	u, rest, ok := wire.ConsumeFixed32(safe, src)
	return math.Float32frombits(u), rest, ok
}
func (Float32) EncodeSkip(float32) int { return 4 }
func (Float32) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 4 {
		return src, false
	}
	return src[4:], true
}

// Fixed64U is the little-endian fixed-width codec for uint64 (fixed64).
type Fixed64U struct{}

func (Fixed64U) WireType() wire.Type { return wire.Fixed64Type }

func (Fixed64U) Encode(safe bool, dst []byte, v uint64) ([]byte, bool) {
	return wire.AppendFixed64(safe, dst, v)
}
func (Fixed64U) Decode(safe bool, src []byte) (uint64, []byte, bool) {
	return wire.ConsumeFixed64(safe, src)
}
func (Fixed64U) EncodeSkip(uint64) int { return 8 }
func (Fixed64U) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 8 {
		return src, false
	}
	return src[8:], true
}

// Fixed64I is proto's sfixed64.
type Fixed64I struct{}

func (Fixed64I) WireType() wire.Type { return wire.Fixed64Type }

func (Fixed64I) Encode(safe bool, dst []byte, v int64) ([]byte, bool) {
	return wire.AppendFixed64(safe, dst, uint64(v))
}
func (Fixed64I) Decode(safe bool, src []byte) (int64, []byte, bool) {
	u, rest, ok := wire.ConsumeFixed64(safe, src)
	return int64(u), rest, ok
}
func (Fixed64I) EncodeSkip(int64) int { return 8 }
func (Fixed64I) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 8 {
		return src, false
	}
	return src[8:], true
}

// Float64 encodes the IEEE 754 bit pattern of a float64 (proto's double).
type Float64 struct{}

func (Float64) WireType() wire.Type { return wire.Fixed64Type }

func (Float64) Encode(safe bool, dst []byte, v float64) ([]byte, bool) {
	return wire.AppendFixed64(safe, dst, math.Float64bits(v))
}
func (Float64) Decode(safe bool, src []byte) (float64, []byte, bool) {
	u, rest, ok := wire.ConsumeFixed64(safe, src)
	return math.Float64frombits(u), rest, ok
}
func (Float64) EncodeSkip(float64) int { return 8 }
func (Float64) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	if safe && len(src) < 8 {
		return src, false
	}
	return src[8:], true
}

var (
	_ Codec[uint32]  = Fixed32U{}
	_ Codec[int32]   = Fixed32I{}
	_ Codec[float32] = Float32{}
	_ Codec[uint64]  = Fixed64U{}
	_ Codec[int64]   = Fixed64I{}
	_ Codec[float64] = Float64{}
)
