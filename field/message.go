package field

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/wire"
)

// Message binds a nested-message field (spec §4.11): wire type is always
// length-delimited, and the payload is body's encoding framed by a
// varint length (package message's message.Codec satisfies codec.Codec[T]
// as exactly this kind of unframed body). A nil slot is omitted on
// encode; decoding always replaces the slot with a freshly decoded value
// (spec §4.11, "on decode, the value replaces the slot") rather than
// merging into whatever was already there.
func Message[M any, T any](num wire.Number, body codec.Codec[T], get func(*M) *T, set func(*M, *T)) Codec[M] {
	return messageField[M, T]{num, codec.LengthPrefixed[T](body), get, set}
}

type messageField[M any, T any] struct {
	num    wire.Number
	framed codec.Codec[T]
	get    func(*M) *T
	set    func(*M, *T)
}

func (f messageField[M, T]) Number() wire.Number { return f.num }

func (messageField[M, T]) AcceptsWireType(wt wire.Type) bool { return wt == wire.BytesType }

func (f messageField[M, T]) Encode(safe bool, dst []byte, m *M) ([]byte, bool) {
	p := f.get(m)
	if p == nil {
		return dst, true
	}
	dst, ok := wire.AppendTag(safe, dst, f.num, wire.BytesType)
	if !ok {
		return dst, false
	}
	return f.framed.Encode(safe, dst, *p)
}

func (f messageField[M, T]) Decode(safe bool, wt wire.Type, src []byte, m *M) ([]byte, bool) {
	v, rest, ok := f.framed.Decode(safe, src)
	if !ok {
		return src, false
	}
	f.set(m, &v)
	return rest, true
}

func (f messageField[M, T]) EncodeSkip(m *M) int {
	p := f.get(m)
	if p == nil {
		return 0
	}
	return wire.SizeTag(f.num) + f.framed.EncodeSkip(*p)
}
