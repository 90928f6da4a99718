// Package wire implements the primitive operations of the Protocol Buffers
// binary wire format: tags, varints, fixed-width integers, and
// length-delimited framing. Every function here is parameterized by a
// safe bool (spec §4.2): when safe, the function bounds-checks each byte
// read/write before it happens and reports failure by returning ok=false
// (the input/output view is returned unchanged); when unsafe, the checks
// are skipped and the caller must guarantee a sufficient buffer.
//
// This package never allocates on the decode path except where the
// destination naturally requires it (ConsumeBytes returns a subslice of
// the input, not a copy).
package wire

import "encoding/binary"

// Number is a protobuf field number. Valid field numbers are in
// [MinNumber, MaxNumber], excluding the reserved range
// [FirstReservedNumber, LastReservedNumber].
type Number int32

const (
	MinNumber           Number = 1
	MaxNumber           Number = 1<<29 - 1
	FirstReservedNumber Number = 19000
	LastReservedNumber  Number = 19999
)

// IsValid reports whether n is usable as a field number.
func (n Number) IsValid() bool {
	return n >= MinNumber && n <= MaxNumber &&
		!(n >= FirstReservedNumber && n <= LastReservedNumber)
}

// Type is a wire type: the 3-bit tag suffix that selects payload framing.
type Type uint8

const (
	VarintType     Type = 0
	Fixed64Type    Type = 1
	BytesType      Type = 2
	StartGroupType Type = 3
	EndGroupType   Type = 4
	Fixed32Type    Type = 5
)

// EncodeTag packs a field number and wire type into the varint-encoded
// value that precedes every field in the wire format.
func EncodeTag(num Number, typ Type) uint64 {
	return uint64(num)<<3 | uint64(typ&7)
}

// DecodeTag splits a raw tag value back into field number and wire type.
func DecodeTag(x uint64) (Number, Type) {
	return Number(x >> 3), Type(x & 7)
}

// SizeVarint returns the number of bytes the varint encoding of v occupies.
func SizeVarint(v uint64) int {
	// Each group of 7 bits needs one byte; a uint64 needs at most 10.
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// SizeTag returns the encoded size of the tag for field number num. The
// wire type does not affect the byte count (it only ever occupies the low
// 3 bits of the first group), so it is not a parameter.
func SizeTag(num Number) int {
	return SizeVarint(EncodeTag(num, 0))
}

// SizeBytes returns the encoded size of a length-delimited payload of n
// content bytes: the varint length prefix plus the content itself.
func SizeBytes(n int) int {
	return SizeVarint(uint64(n)) + n
}

// AppendVarint writes the base-128 LEB varint encoding of v into b, which
// must have at least SizeVarint(v) bytes of room. It returns the
// unconsumed suffix of b and whether the write succeeded.
//
// In safe mode the length is checked before any byte is written, so a
// failed call leaves b untouched (spec §4.2: "Safe-mode checks occur
// before each byte read/write").
func AppendVarint(safe bool, b []byte, v uint64) ([]byte, bool) {
	n := SizeVarint(v)
	if safe && len(b) < n {
		return b, false
	}
	i := 0
	for v >= 0x80 {
		b[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	b[i] = byte(v)
	return b[n:], true
}

// maxVarintBytes bounds the continuation-byte run a decoder will accept
// for a 64-bit value: ceil(64/7) = 10 groups.
const maxVarintBytes = 10

// ConsumeVarint decodes a base-128 LEB varint from the front of b. It
// returns the decoded value, the unconsumed suffix, and whether decoding
// succeeded.
//
// Failure (ok=false) covers every case in spec §4.5's "Safe-mode
// failures": an empty view, a run that exceeds maxVarintBytes without a
// terminating byte, or (in safe mode) simply running out of input
// mid-group. High bits beyond 64 in the final byte are discarded, per the
// wire-format convention the spec calls out explicitly.
func ConsumeVarint(safe bool, b []byte) (v uint64, rest []byte, ok bool) {
	var shift uint
	for i := 0; i < maxVarintBytes; i++ {
		if safe && i >= len(b) {
			return 0, b, false
		}
		c := b[i]
		if i == maxVarintBytes-1 && c >= 0x80 {
			return 0, b, false // continuation run too long
		}
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, b[i+1:], true
		}
		shift += 7
	}
	return 0, b, false
}

// AppendTag writes the varint-encoded tag for (num, typ).
func AppendTag(safe bool, b []byte, num Number, typ Type) ([]byte, bool) {
	return AppendVarint(safe, b, EncodeTag(num, typ))
}

// ConsumeTag reads a tag and splits it into field number and wire type.
// It fails if the varint itself is malformed or, in safe mode, if the
// decoded field number is out of the valid range (spec: field numbers in
// [1, 2^29-1] excluding 19000-19999).
func ConsumeTag(safe bool, b []byte) (num Number, typ Type, rest []byte, ok bool) {
	v, rest, ok := ConsumeVarint(safe, b)
	if !ok {
		return 0, 0, b, false
	}
	num, typ = DecodeTag(v)
	if safe && !num.IsValid() {
		return 0, 0, b, false
	}
	return num, typ, rest, true
}

// AppendFixed32 writes v as 4 little-endian bytes.
func AppendFixed32(safe bool, b []byte, v uint32) ([]byte, bool) {
	if safe && len(b) < 4 {
		return b, false
	}
	binary.LittleEndian.PutUint32(b, v)
	return b[4:], true
}

// ConsumeFixed32 reads 4 little-endian bytes.
func ConsumeFixed32(safe bool, b []byte) (v uint32, rest []byte, ok bool) {
	if safe && len(b) < 4 {
		return 0, b, false
	}
	return binary.LittleEndian.Uint32(b), b[4:], true
}

// AppendFixed64 writes v as 8 little-endian bytes.
func AppendFixed64(safe bool, b []byte, v uint64) ([]byte, bool) {
	if safe && len(b) < 8 {
		return b, false
	}
	binary.LittleEndian.PutUint64(b, v)
	return b[8:], true
}

// ConsumeFixed64 reads 8 little-endian bytes.
func ConsumeFixed64(safe bool, b []byte) (v uint64, rest []byte, ok bool) {
	if safe && len(b) < 8 {
		return 0, b, false
	}
	return binary.LittleEndian.Uint64(b), b[8:], true
}

// AppendBytes writes a length-delimited byte string: varint(len(v)) || v.
func AppendBytes(safe bool, b []byte, v []byte) ([]byte, bool) {
	if safe && len(b) < SizeBytes(len(v)) {
		return b, false
	}
	b, _ = AppendVarint(safe, b, uint64(len(v)))
	n := copy(b, v)
	return b[n:], true
}

// ConsumeBytes reads a length-delimited byte string and returns it as a
// subslice of b (no copy). It fails with LengthPrefixOverrun semantics if
// the declared length exceeds what remains in b.
func ConsumeBytes(safe bool, b []byte) (v []byte, rest []byte, ok bool) {
	n, rest, ok := ConsumeVarint(safe, b)
	if !ok {
		return nil, b, false
	}
	if n > uint64(len(rest)) {
		return nil, b, false
	}
	return rest[:n], rest[n:], true
}

// Skip advances past one encoded value of the given wire type without
// materializing it, dispatching purely on typ — this is what lets the
// message decoder tolerate unknown fields (spec §4.12) without knowing
// their declared element type. Group wire types are always rejected:
// spec §3 declares 3/4 unsupported, fatal on decode.
func Skip(safe bool, typ Type, b []byte) (rest []byte, ok bool) {
	switch typ {
	case VarintType:
		_, rest, ok = ConsumeVarint(safe, b)
		return rest, ok
	case Fixed64Type:
		if safe && len(b) < 8 {
			return b, false
		}
		return b[8:], true
	case Fixed32Type:
		if safe && len(b) < 4 {
			return b, false
		}
		return b[4:], true
	case BytesType:
		_, rest, ok = ConsumeBytes(safe, b)
		return rest, ok
	default:
		return b, false // StartGroupType, EndGroupType: unsupported
	}
}

// EncodeZigZag32 maps a signed 32-bit value to its zigzag-encoded unsigned
// form: small-magnitude values (positive or negative) stay short.
func EncodeZigZag32(x int32) uint32 { return uint32(x<<1) ^ uint32(x>>31) }

// DecodeZigZag32 is the inverse of EncodeZigZag32.
func DecodeZigZag32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }

// EncodeZigZag64 maps a signed 64-bit value to its zigzag-encoded unsigned
// form.
func EncodeZigZag64(x int64) uint64 { return uint64(x<<1) ^ uint64(x>>63) }

// DecodeZigZag64 is the inverse of EncodeZigZag64.
func DecodeZigZag64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }
