// Package protopuf provides type-directed, wire-compatible Protocol
// Buffers encoding built from composable codec primitives (packages
// wire, codec, field, message) instead of a runtime schema/reflection
// layer. Marshal and Unmarshal here mirror the teacher's
// proto.Marshal/proto.Unmarshal entry points, but operate on a
// *message.Codec[M] the caller builds once (typically in a package
// init or a var) rather than on a generated descriptor.
package protopuf

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/internal/perrors"
	"github.com/protopuf-go/protopuf/message"
)

// Marshal encodes v as the raw message body bytes using c, the way the
// teacher's proto.Marshal encodes a top-level message: unlike a nested
// message field, a top-level message carries no outer length prefix.
func Marshal[M any](c *message.Codec[M], v M, opts codec.EncodeOptions) ([]byte, error) {
	buf := make([]byte, c.EncodeSkip(v))
	if _, ok := c.Encode(opts.Safe, buf, v); !ok {
		return nil, perrors.New("marshal: encode failed against precomputed size")
	}
	return buf, nil
}

// Unmarshal decodes src as a message body into a fresh M using c.
// Trailing garbage after a structurally complete message is not
// possible here since Decode only returns ok once src is fully
// consumed (spec §4.12) -- a short or malformed tag anywhere in src
// fails the whole call.
func Unmarshal[M any](c *message.Codec[M], src []byte, opts codec.DecodeOptions) (M, error) {
	v, rest, ok := c.Decode(opts.Safe, src)
	if !ok || len(rest) != 0 {
		return v, perrors.Wrap(perrors.ErrMalformedMessage, "unmarshal: malformed message")
	}
	return v, nil
}
