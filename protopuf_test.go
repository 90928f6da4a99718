package protopuf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/protopuf-go/protopuf"
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/example/school"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := school.Class{
		Name: "class 101",
		Students: []school.Student{
			{ID: 456, Name: "tom"},
			{ID: 123456, Name: "jerry"},
			{ID: 123, Name: "twice"},
		},
	}

	buf, err := protopuf.Marshal(school.ClassCodec, in, codec.EncodeOptions{Safe: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 45 {
		t.Fatalf("Marshal produced %d bytes, want 45 (%x)", len(buf), buf)
	}

	got, err := protopuf.Unmarshal(school.ClassCodec, buf, codec.DecodeOptions{Safe: true})
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalTruncatedMessageFails(t *testing.T) {
	in := school.Class{Name: "x", Students: []school.Student{{ID: 1, Name: "a"}}}
	buf, err := protopuf.Marshal(school.ClassCodec, in, codec.EncodeOptions{Safe: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if _, err := protopuf.Unmarshal(school.ClassCodec, buf[:len(buf)-1], codec.DecodeOptions{Safe: true}); err == nil {
		t.Fatalf("expected Unmarshal to fail on a truncated message")
	}
}
