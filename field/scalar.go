package field

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/wire"
)

// Scalar binds a proto3 singular scalar field (spec §4.11): the zero
// value of T is never emitted, and decoding an absent field leaves the
// slot at its zero value.
func Scalar[M any, T comparable](num wire.Number, elem codec.Codec[T], get func(*M) T, set func(*M, T)) Codec[M] {
	return scalarField[M, T]{num, elem, get, set}
}

type scalarField[M any, T comparable] struct {
	num  wire.Number
	elem codec.Codec[T]
	get  func(*M) T
	set  func(*M, T)
}

func (f scalarField[M, T]) Number() wire.Number { return f.num }

func (f scalarField[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == f.elem.WireType()
}

func (f scalarField[M, T]) Encode(safe bool, dst []byte, m *M) ([]byte, bool) {
	v := f.get(m)
	var zero T
	if v == zero {
		return dst, true // default elision, spec §4.11
	}
	dst, ok := wire.AppendTag(safe, dst, f.num, f.elem.WireType())
	if !ok {
		return dst, false
	}
	return f.elem.Encode(safe, dst, v)
}

func (f scalarField[M, T]) Decode(safe bool, wt wire.Type, src []byte, m *M) ([]byte, bool) {
	v, rest, ok := f.elem.Decode(safe, src)
	if !ok {
		return src, false
	}
	f.set(m, v) // duplicate singular occurrences: last wins, spec §4.12
	return rest, true
}

func (f scalarField[M, T]) EncodeSkip(m *M) int {
	v := f.get(m)
	var zero T
	if v == zero {
		return 0
	}
	return wire.SizeTag(f.num) + f.elem.EncodeSkip(v)
}

// Optional binds an explicit-presence field (spec §4.11): the field is
// emitted whenever the slot is non-nil, regardless of the pointed-to
// value, and absence round-trips as a nil pointer rather than a zero
// value.
func Optional[M any, T any](num wire.Number, elem codec.Codec[T], get func(*M) *T, set func(*M, *T)) Codec[M] {
	return optionalField[M, T]{num, elem, get, set}
}

type optionalField[M any, T any] struct {
	num  wire.Number
	elem codec.Codec[T]
	get  func(*M) *T
	set  func(*M, *T)
}

func (f optionalField[M, T]) Number() wire.Number { return f.num }

func (f optionalField[M, T]) AcceptsWireType(wt wire.Type) bool {
	return wt == f.elem.WireType()
}

func (f optionalField[M, T]) Encode(safe bool, dst []byte, m *M) ([]byte, bool) {
	p := f.get(m)
	if p == nil {
		return dst, true
	}
	dst, ok := wire.AppendTag(safe, dst, f.num, f.elem.WireType())
	if !ok {
		return dst, false
	}
	return f.elem.Encode(safe, dst, *p)
}

func (f optionalField[M, T]) Decode(safe bool, wt wire.Type, src []byte, m *M) ([]byte, bool) {
	v, rest, ok := f.elem.Decode(safe, src)
	if !ok {
		return src, false
	}
	f.set(m, &v)
	return rest, true
}

func (f optionalField[M, T]) EncodeSkip(m *M) int {
	p := f.get(m)
	if p == nil {
		return 0
	}
	return wire.SizeTag(f.num) + f.elem.EncodeSkip(*p)
}
