// Package message composes field.Codec values declared for a Go struct
// type into the tag-dispatch encoder/decoder spec §4.12 describes:
// encode walks the field list in declaration order; decode loops over
// tags, dispatching each to the field it names or skipping it by wire
// type when the number is unknown. This is the message half of spec
// §9's "variadic generic tuples (static dispatch)" composition strategy
// -- field.Codec values plug directly into a plain Go slice here, with
// no descriptor or reflection layer standing between them, the way
// the teacher's internal/impl.codecMessageInfo dense field table
// dispatches by field number without reflection on the hot path.
package message

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/field"
	"github.com/protopuf-go/protopuf/wire"
)

// Codec is the unframed (raw) wire encoding of a message body: the
// concatenation of each present field's tag+value. It satisfies
// codec.Codec[M] directly, so it can be used both as a top-level
// Marshal/Unmarshal target and, wrapped in codec.LengthPrefixed by
// field.Message, as a nested-message field's element codec.
type Codec[M any] struct {
	fields []field.Codec[M]
	byNum  map[wire.Number]field.Codec[M]
}

// New declares a message's fields in encode order. Field numbers must
// be unique; New panics on a duplicate, since that can only be a
// programming error in the caller's schema declaration, not malformed
// wire input.
func New[M any](fields ...field.Codec[M]) *Codec[M] {
	byNum := make(map[wire.Number]field.Codec[M], len(fields))
	for _, f := range fields {
		if _, dup := byNum[f.Number()]; dup {
			panic("message: duplicate field number in schema")
		}
		byNum[f.Number()] = f
	}
	return &Codec[M]{fields: fields, byNum: byNum}
}

func (c *Codec[M]) WireType() wire.Type { return wire.BytesType }

// Encode appends the message body for v: each field in declaration
// order contributes its tag(s)+value, or nothing if the field is
// absent/default (spec §4.12 "Ordering" -- field encode order is
// unspecified by the wire format itself; this codec uses declaration
// order, matching how the teacher emits struct fields).
func (c *Codec[M]) Encode(safe bool, dst []byte, v M) ([]byte, bool) {
	var ok bool
	for _, f := range c.fields {
		dst, ok = f.Encode(safe, dst, &v)
		if !ok {
			return dst, false
		}
	}
	return dst, true
}

// Decode consumes tag/value pairs until src is exhausted. A tag naming
// an unknown field number is skipped by wire type (spec §4.12, "unknown
// fields are discarded by default"); a tag naming a known field whose
// wire type the field does not accept is a fatal decode error, not a
// skip -- the two are never conflated here.
func (c *Codec[M]) Decode(safe bool, src []byte) (M, []byte, bool) {
	var v M
	for len(src) > 0 {
		num, wt, rest, ok := wire.ConsumeTag(safe, src)
		if !ok {
			return v, src, false
		}
		f, known := c.byNum[num]
		if !known {
			rest, ok = wire.Skip(safe, wt, rest)
			if !ok {
				return v, src, false
			}
			src = rest
			continue
		}
		if !f.AcceptsWireType(wt) {
			return v, src, false
		}
		rest, ok = f.Decode(safe, wt, rest, &v)
		if !ok {
			return v, src, false
		}
		src = rest
	}
	return v, src, true
}

func (c *Codec[M]) EncodeSkip(v M) int {
	n := 0
	for _, f := range c.fields {
		n += f.EncodeSkip(&v)
	}
	return n
}

// DecodeSkip discards one message body without building a value. It
// only needs each occurrence's wire type, so it dispatches through
// wire.Skip directly rather than consulting the field table -- a
// message's own nested-message fields are skipped exactly as cheaply
// as scalar ones, since skip never decodes the payload it walks past.
func (c *Codec[M]) DecodeSkip(safe bool, src []byte) ([]byte, bool) {
	for len(src) > 0 {
		_, wt, rest, ok := wire.ConsumeTag(safe, src)
		if !ok {
			return src, false
		}
		rest, ok = wire.Skip(safe, wt, rest)
		if !ok {
			return src, false
		}
		src = rest
	}
	return src, true
}

var _ codec.Codec[struct{}] = (*Codec[struct{}])(nil)
