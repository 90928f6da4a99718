package field

import (
	"cmp"
	"slices"

	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/wire"
)

// MapEntry is the implicit key/value submessage spec §4.11 describes a
// map field as: proto's map<K,V> is wire-compatible with a repeated
// MapEntry{1: key, 2: value} field, and this package reuses exactly that
// framing rather than inventing a dedicated map wire form.
type MapEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map binds a map field (spec §4.11). entry is the unframed MapEntry
// body codec built by the caller via package message (field cannot
// import message without a cycle, since message composes field.Codec
// values); Map frames each occurrence with its own length prefix, the
// same way field.Message frames a singular nested message, since a map
// field is wire-compatible with a repeated, length-delimited MapEntry
// field. Encode iterates the map in ascending key order for
// deterministic output (spec §4.11 "Determinism", SPEC_FULL.md §C);
// Decode accepts entries in any order and in any multiplicity, later
// entries for a duplicate key winning, as spec §4.12 prescribes for
// singular occurrences in general.
func Map[M any, K cmp.Ordered, V any](num wire.Number, entry codec.Codec[MapEntry[K, V]], get func(*M) map[K]V, set func(*M, map[K]V)) Codec[M] {
	return mapField[M, K, V]{num, codec.LengthPrefixed[MapEntry[K, V]](entry), get, set}
}

type mapField[M any, K cmp.Ordered, V any] struct {
	num    wire.Number
	framed codec.Codec[MapEntry[K, V]]
	get    func(*M) map[K]V
	set    func(*M, map[K]V)
}

func (f mapField[M, K, V]) Number() wire.Number { return f.num }

func (mapField[M, K, V]) AcceptsWireType(wt wire.Type) bool { return wt == wire.BytesType }

func (f mapField[M, K, V]) Encode(safe bool, dst []byte, m *M) ([]byte, bool) {
	mp := f.get(m)
	if len(mp) == 0 {
		return dst, true
	}
	keys := make([]K, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var ok bool
	for _, k := range keys {
		dst, ok = wire.AppendTag(safe, dst, f.num, wire.BytesType)
		if !ok {
			return dst, false
		}
		dst, ok = f.framed.Encode(safe, dst, MapEntry[K, V]{Key: k, Value: mp[k]})
		if !ok {
			return dst, false
		}
	}
	return dst, true
}

func (f mapField[M, K, V]) Decode(safe bool, wt wire.Type, src []byte, m *M) ([]byte, bool) {
	e, rest, ok := f.framed.Decode(safe, src)
	if !ok {
		return src, false
	}
	mp := f.get(m)
	if mp == nil {
		mp = make(map[K]V)
		f.set(m, mp)
	}
	mp[e.Key] = e.Value
	return rest, true
}

func (f mapField[M, K, V]) EncodeSkip(m *M) int {
	mp := f.get(m)
	if len(mp) == 0 {
		return 0
	}
	n := 0
	for k, v := range mp {
		n += wire.SizeTag(f.num) + f.framed.EncodeSkip(MapEntry[K, V]{Key: k, Value: v})
	}
	return n
}
