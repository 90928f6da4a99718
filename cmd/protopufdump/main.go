// protopufdump prints a tag-by-tag structural trace of a raw
// Protocol-Buffers wire-format byte stream: field number, wire type,
// and either the decoded scalar value (varint/fixed32/fixed64) or the
// length of a length-delimited occurrence. With -recurse, a
// length-delimited payload is also traced as a nested message, and its
// raw bytes are printed when that trace fails. It does not
// know any message schema, so it cannot tell a nested submessage from
// an opaque byte string or a string field -- that ambiguity is
// inherent to the wire format itself (spec §1), not a limitation of
// this tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/protopuf-go/protopuf/wire"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	indentNested := flag.Bool("recurse", false, "attempt to recursively trace length-delimited values as nested messages")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [FILE]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Trace the tags in a raw protocol buffer wire-format message.")
		fmt.Fprintln(os.Stderr, "Reads from FILE, or stdin if no FILE is given.")
		flag.PrintDefaults()
	}
	flag.Parse()

	var buf []byte
	var err error
	if flag.NArg() == 0 {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(flag.Arg(0))
	}
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	if ok := trace(os.Stdout, buf, 0, *indentNested); !ok {
		log.Fatalf("malformed wire data")
	}
}

func trace(w io.Writer, buf []byte, depth int, recurse bool) bool {
	indent := strings.Repeat("  ", depth)
	for len(buf) > 0 {
		num, typ, rest, ok := wire.ConsumeTag(true, buf)
		if !ok {
			return false
		}
		buf = rest

		switch typ {
		case wire.VarintType:
			v, rest, ok := wire.ConsumeVarint(true, buf)
			if !ok {
				return false
			}
			fmt.Fprintf(w, "%sfield %d: varint %d\n", indent, num, v)
			buf = rest
		case wire.Fixed32Type:
			v, rest, ok := wire.ConsumeFixed32(true, buf)
			if !ok {
				return false
			}
			fmt.Fprintf(w, "%sfield %d: fixed32 0x%08x\n", indent, num, v)
			buf = rest
		case wire.Fixed64Type:
			v, rest, ok := wire.ConsumeFixed64(true, buf)
			if !ok {
				return false
			}
			fmt.Fprintf(w, "%sfield %d: fixed64 0x%016x\n", indent, num, v)
			buf = rest
		case wire.BytesType:
			v, rest, ok := wire.ConsumeBytes(true, buf)
			if !ok {
				return false
			}
			fmt.Fprintf(w, "%sfield %d: bytes len=%d\n", indent, num, len(v))
			if recurse && trace(w, v, depth+1, recurse) {
				// nested trace already printed; nothing else to do
			} else if recurse {
				fmt.Fprintf(w, "%s  (not a nested message: %q)\n", indent, v)
			}
			buf = rest
		default:
			fmt.Fprintf(w, "%sfield %d: unsupported wire type %d\n", indent, num, typ)
			return false
		}
	}
	return true
}
