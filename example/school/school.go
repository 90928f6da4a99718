// Package school is the worked example from spec §8's nested-message
// scenario: Student = message<varint<1,u32>, string<3>>, Class =
// message<string<8>, repeated<message<3,Student>>>. It exists to give
// the field and message packages a concrete, spec-traceable schema to
// test against, the way the teacher's internal/testprotos packages give
// proto/encoding tests a fixed schema to run round-trips over.
package school

import (
	"github.com/protopuf-go/protopuf/codec"
	"github.com/protopuf-go/protopuf/field"
	"github.com/protopuf-go/protopuf/message"
)

type Student struct {
	ID   uint32
	Name string
}

var StudentCodec = message.New[Student](
	field.Scalar(1, codec.VarintU[uint32]{}, func(s *Student) uint32 { return s.ID }, func(s *Student, v uint32) { s.ID = v }),
	field.Scalar(3, codec.String{}, func(s *Student) string { return s.Name }, func(s *Student, v string) { s.Name = v }),
)

type Class struct {
	Name     string
	Students []Student
}

// studentEntry frames each repeated Student occurrence as its own
// length-delimited submessage (spec §4.11 "Nested message"); Repeated
// then emits one tag + framed-body per element rather than a single
// packed block, since packing is only valid for scalar/bool/enum
// elements.
var studentEntry = codec.LengthPrefixed[Student](StudentCodec)

var ClassCodec = message.New[Class](
	field.Scalar(8, codec.String{}, func(c *Class) string { return c.Name }, func(c *Class, v string) { c.Name = v }),
	field.Repeated(3, studentEntry, func(c *Class) []Student { return c.Students }, func(c *Class, v []Student) { c.Students = v }),
)
