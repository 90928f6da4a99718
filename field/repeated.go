package field

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/wire"
)

// Repeated binds an unpacked repeated field: one tag + value per element
// on encode (spec §4.11). Decode accepts either wire form regardless of
// which constructor built the field — spec §8 law 8, "repeated tolerance"
// — so a Repeated field correctly absorbs a packed producer's output too.
func Repeated[M any, T any](num wire.Number, elem codec.Codec[T], get func(*M) []T, set func(*M, []T)) Codec[M] {
	return repeatedField[M, T]{num, elem, codec.Array[T](elem), false, get, set}
}

// Packed binds a packed repeated scalar field: all elements are
// concatenated into a single length-delimited block under one tag (spec
// §4.11). elem must be a scalar/bool/enum codec (its wire type must not
// already be length-delimited); Decode still tolerates an unpacked
// producer by the same law 8 symmetry Repeated does.
func Packed[M any, T any](num wire.Number, elem codec.Codec[T], get func(*M) []T, set func(*M, []T)) Codec[M] {
	return repeatedField[M, T]{num, elem, codec.Array[T](elem), true, get, set}
}

type repeatedField[M any, T any] struct {
	num    wire.Number
	elem   codec.Codec[T]
	arr    codec.Codec[[]T]
	packed bool
	get    func(*M) []T
	set    func(*M, []T)
}

func (f repeatedField[M, T]) Number() wire.Number { return f.num }

func (f repeatedField[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == f.elem.WireType() || wt == wire.BytesType
}

func (f repeatedField[M, T]) Encode(safe bool, dst []byte, m *M) ([]byte, bool) {
	vs := f.get(m)
	if len(vs) == 0 {
		return dst, true
	}
	if f.packed {
		dst, ok := wire.AppendTag(safe, dst, f.num, wire.BytesType)
		if !ok {
			return dst, false
		}
		return f.arr.Encode(safe, dst, vs)
	}
	var ok bool
	for _, v := range vs {
		dst, ok = wire.AppendTag(safe, dst, f.num, f.elem.WireType())
		if !ok {
			return dst, false
		}
		dst, ok = f.elem.Encode(safe, dst, v)
		if !ok {
			return dst, false
		}
	}
	return dst, true
}

func (f repeatedField[M, T]) Decode(safe bool, wt wire.Type, src []byte, m *M) ([]byte, bool) {
	// A length-delimited occurrence of a field whose native wire type
	// isn't itself length-delimited is the packed form; anything else
	// (including a length-delimited *native* element, e.g. a repeated
	// message or string) is one unpacked element.
	if wt == wire.BytesType && f.elem.WireType() != wire.BytesType {
		vs, rest, ok := f.arr.Decode(safe, src)
		if !ok {
			return src, false
		}
		f.set(m, append(f.get(m), vs...))
		return rest, true
	}
	v, rest, ok := f.elem.Decode(safe, src)
	if !ok {
		return src, false
	}
	f.set(m, append(f.get(m), v))
	return rest, true
}

func (f repeatedField[M, T]) EncodeSkip(m *M) int {
	vs := f.get(m)
	if len(vs) == 0 {
		return 0
	}
	if f.packed {
		return wire.SizeTag(f.num) + f.arr.EncodeSkip(vs)
	}
	n := 0
	for _, v := range vs {
		n += wire.SizeTag(f.num) + f.elem.EncodeSkip(v)
	}
	return n
}
