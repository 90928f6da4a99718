package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/field"
	"github.com/protopuf-go/protopuf/message"
	"github.com/protopuf-go/protopuf/wire"
)

type widget struct {
	ID     uint32
	Label  *string
	Tags   []uint32
	Scores []int32
	Attrs  map[string]uint32
}

var widgetCodec = message.New[widget](
	field.Scalar(1, codec.VarintU[uint32]{}, func(w *widget) uint32 { return w.ID }, func(w *widget, v uint32) { w.ID = v }),
	field.Optional(2, codec.String{}, func(w *widget) *string { return w.Label }, func(w *widget, v *string) { w.Label = v }),
	field.Packed(3, codec.VarintU[uint32]{}, func(w *widget) []uint32 { return w.Tags }, func(w *widget, v []uint32) { w.Tags = v }),
	field.Repeated(4, codec.VarintS[int32]{}, func(w *widget) []int32 { return w.Scores }, func(w *widget, v []int32) { w.Scores = v }),
	field.Map(5, message.New[field.MapEntry[string, uint32]](
		field.Scalar(1, codec.String{}, func(e *field.MapEntry[string, uint32]) string { return e.Key }, func(e *field.MapEntry[string, uint32], v string) { e.Key = v }),
		field.Scalar(2, codec.VarintU[uint32]{}, func(e *field.MapEntry[string, uint32]) uint32 { return e.Value }, func(e *field.MapEntry[string, uint32], v uint32) { e.Value = v }),
	), func(w *widget) map[string]uint32 { return w.Attrs }, func(w *widget, v map[string]uint32) { w.Attrs = v }),
)

func roundTrip(t *testing.T, in widget) widget {
	t.Helper()
	buf := make([]byte, widgetCodec.EncodeSkip(in))
	rest, ok := widgetCodec.Encode(true, buf, in)
	if !ok {
		t.Fatalf("encode failed")
	}
	dst := buf[:len(buf)-len(rest)]
	out, tail, ok := widgetCodec.Decode(true, dst)
	if !ok || len(tail) != 0 {
		t.Fatalf("decode failed, ok=%v tail=%d", ok, len(tail))
	}
	return out
}

func TestOptionalFieldPresence(t *testing.T) {
	label := "hello"
	out := roundTrip(t, widget{ID: 1, Label: &label})
	if out.Label == nil || *out.Label != label {
		t.Fatalf("expected label %q, got %v", label, out.Label)
	}

	out = roundTrip(t, widget{ID: 1})
	if out.Label != nil {
		t.Fatalf("expected nil label, got %v", out.Label)
	}
}

func TestPackedAndUnpackedRoundTrip(t *testing.T) {
	in := widget{Tags: []uint32{1, 2, 3}, Scores: []int32{-1, 0, 7}}
	out := roundTrip(t, in)
	if diff := cmp.Diff(in.Tags, out.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(in.Scores, out.Scores); diff != "" {
		t.Fatalf("scores mismatch (-want +got):\n%s", diff)
	}
}

// TestPackedUnpackedTolerance exercises spec §8 law 8 in one direction:
// a packed-declared field decodes a producer's unpacked wire encoding of
// the same field number.
func TestPackedUnpackedTolerance(t *testing.T) {
	unpackedTags := message.New[widget](
		field.Repeated(3, codec.VarintU[uint32]{}, func(w *widget) []uint32 { return w.Tags }, func(w *widget, v []uint32) { w.Tags = v }),
	)
	in := widget{Tags: []uint32{10, 20, 30}}
	buf := make([]byte, unpackedTags.EncodeSkip(in))
	rest, ok := unpackedTags.Encode(true, buf, in)
	if !ok {
		t.Fatalf("encode failed")
	}
	encoded := buf[:len(buf)-len(rest)]
	got, tail, ok := widgetCodec.Decode(true, encoded)
	if !ok || len(tail) != 0 {
		t.Fatalf("decode failed, ok=%v tail=%d", ok, len(tail))
	}
	if diff := cmp.Diff([]uint32{10, 20, 30}, got.Tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMapFieldRoundTrip(t *testing.T) {
	in := widget{Attrs: map[string]uint32{"a": 1, "b": 2, "c": 3}}
	out := roundTrip(t, in)
	if diff := cmp.Diff(in.Attrs, out.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestMapFieldEncodeIsDeterministic(t *testing.T) {
	in := widget{Attrs: map[string]uint32{"z": 1, "a": 2, "m": 3}}
	n := widgetCodec.EncodeSkip(in)
	firstBuf := make([]byte, n)
	firstRest, ok := widgetCodec.Encode(true, firstBuf, in)
	if !ok {
		t.Fatalf("encode failed")
	}
	first := firstBuf[:len(firstBuf)-len(firstRest)]
	for i := 0; i < 5; i++ {
		againBuf := make([]byte, n)
		againRest, ok := widgetCodec.Encode(true, againBuf, in)
		if !ok {
			t.Fatalf("encode failed")
		}
		again := againBuf[:len(againBuf)-len(againRest)]
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("encoding the same map twice produced different bytes (-first +again):\n%s", diff)
		}
	}
}

func TestUnknownFieldIsSkipped(t *testing.T) {
	minimal := message.New[widget](
		field.Scalar(1, codec.VarintU[uint32]{}, func(w *widget) uint32 { return w.ID }, func(w *widget, v uint32) { w.ID = v }),
	)
	full := roundTrip(t, widget{ID: 1, Tags: []uint32{1, 2}, Attrs: map[string]uint32{"k": 9}})
	buf := make([]byte, widgetCodec.EncodeSkip(full))
	rest, ok := widgetCodec.Encode(true, buf, full)
	if !ok {
		t.Fatalf("encode failed")
	}
	encoded := buf[:len(buf)-len(rest)]
	out, tail, ok := minimal.Decode(true, encoded)
	if !ok {
		t.Fatalf("decode of a schema with unknown fields should succeed, discarding them")
	}
	if len(tail) != 0 {
		t.Fatalf("expected all bytes consumed, %d left", len(tail))
	}
	if out.ID != full.ID {
		t.Fatalf("ID = %d, want %d", out.ID, full.ID)
	}
}

func TestWireTypeMismatchIsFatal(t *testing.T) {
	// Field 1 declared as a varint but tagged here as length-delimited.
	buf := make([]byte, wire.SizeTag(1)+wire.SizeBytes(len("oops")))
	rest, ok := wire.AppendTag(true, buf, 1, wire.BytesType)
	if !ok {
		t.Fatalf("AppendTag failed")
	}
	rest, ok = wire.AppendBytes(true, rest, []byte("oops"))
	if !ok {
		t.Fatalf("AppendBytes failed")
	}
	encoded := buf[:len(buf)-len(rest)]
	if _, _, ok := widgetCodec.Decode(true, encoded); ok {
		t.Fatalf("expected decode to fail on wire type mismatch")
	}
}
