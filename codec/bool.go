package codec

import "github.com/protopuf-go/protopuf/wire"

// Bool is the boolean codec: varint over a single unsigned byte, 0 =
// false, nonzero = true, always one byte on encode (spec §4.7).
type Bool struct{}

func (Bool) WireType() wire.Type { return wire.VarintType }

func (Bool) Encode(safe bool, dst []byte, v bool) ([]byte, bool) {
	var u uint64
	if v {
		u = 1
	}
	return wire.AppendVarint(safe, dst, u)
}

func (Bool) Decode(safe bool, src []byte) (bool, []byte, bool) {
	u, rest, ok := wire.ConsumeVarint(safe, src)
	return u != 0, rest, ok
}

func (Bool) EncodeSkip(bool) int { return 1 }

func (Bool) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	_, rest, ok := wire.ConsumeVarint(safe, src)
	return rest, ok
}

var _ Codec[bool] = Bool{}
