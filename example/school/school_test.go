package school

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestClassRoundTrip reproduces spec §8's worked nested-message
// scenario byte-for-byte: encoding the given Class into a 64-byte
// buffer must produce exactly 45 bytes, and decoding those 45 bytes
// must reconstruct a structurally equal value.
func TestClassRoundTrip(t *testing.T) {
	in := Class{
		Name: "class 101",
		Students: []Student{
			{ID: 456, Name: "tom"},
			{ID: 123456, Name: "jerry"},
			{ID: 123, Name: "twice"},
		},
	}

	buf := make([]byte, 64)
	rest, ok := ClassCodec.Encode(true, buf, in)
	if !ok {
		t.Fatalf("Encode failed")
	}
	dst := buf[:len(buf)-len(rest)]
	if len(dst) != 45 {
		t.Fatalf("encoded length = %d, want 45 (%x)", len(dst), dst)
	}

	got, tail, ok := ClassCodec.Decode(true, dst)
	if !ok {
		t.Fatalf("Decode failed")
	}
	if len(tail) != 0 {
		t.Fatalf("trailing bytes after decode: %d", len(tail))
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestClassEncodeSkipMatchesActualLength(t *testing.T) {
	in := Class{Name: "x", Students: []Student{{ID: 1, Name: "a"}}}
	n := ClassCodec.EncodeSkip(in)
	buf := make([]byte, n)
	rest, ok := ClassCodec.Encode(true, buf, in)
	if !ok {
		t.Fatalf("Encode failed")
	}
	dst := buf[:len(buf)-len(rest)]
	if len(dst) != n {
		t.Fatalf("EncodeSkip = %d, actual encoded length = %d", n, len(dst))
	}
}

func TestEmptyClassRoundTrip(t *testing.T) {
	in := Class{}
	dst, ok := ClassCodec.Encode(true, nil, in)
	if !ok {
		t.Fatalf("Encode failed")
	}
	if len(dst) != 0 {
		t.Fatalf("encoding the zero value should produce no bytes, got %d", len(dst))
	}
	got, _, ok := ClassCodec.Decode(true, dst)
	if !ok {
		t.Fatalf("Decode failed")
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsafeModeMatchesSafeMode(t *testing.T) {
	in := Class{
		Name:     "class 101",
		Students: []Student{{ID: 456, Name: "tom"}},
	}
	n := ClassCodec.EncodeSkip(in)
	safeBuf := make([]byte, n)
	safeRest, ok := ClassCodec.Encode(true, safeBuf, in)
	if !ok {
		t.Fatalf("safe encode failed")
	}
	safeOut := safeBuf[:len(safeBuf)-len(safeRest)]

	unsafeBuf := make([]byte, n)
	unsafeRest, ok := ClassCodec.Encode(false, unsafeBuf, in)
	if !ok {
		t.Fatalf("unsafe encode failed")
	}
	unsafeOut := unsafeBuf[:len(unsafeBuf)-len(unsafeRest)]

	if diff := cmp.Diff(safeOut, unsafeOut); diff != "" {
		t.Fatalf("safe/unsafe encodings differ (-safe +unsafe):\n%s", diff)
	}
}
