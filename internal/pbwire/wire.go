// Package pbwire provides the low-level varint/tag/length-delimited
// primitives used by the hand-written Marshal/Unmarshal methods in this
// module's protobuf message types. It mirrors the helper calls
// protoc-gen-gogo emits inline in generated code (EncodeVarint,
// sovXxx, skippers) so that messages without a generated .pb.go still
// produce byte-identical wire output to what protoc would have produced.
package pbwire

import (
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// SizeVarint returns the number of bytes EncodeVarint would write for v.
func SizeVarint(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// SizeTag returns the number of bytes a field tag (field<<3|wireType) takes.
func SizeTag(fieldNum int) int {
	return SizeVarint(uint64(fieldNum) << 3)
}

// AppendVarint appends v to dst as a protobuf varint.
func AppendVarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}

// AppendTag appends a field tag for the given field number and wire type.
func AppendTag(dst []byte, fieldNum int, wireType protowire.Type) []byte {
	return protowire.AppendTag(dst, protowire.Number(fieldNum), wireType)
}

// AppendBytes appends a length-delimited field (tag + length + raw bytes).
func AppendBytes(dst []byte, fieldNum int, b []byte) []byte {
	dst = AppendTag(dst, fieldNum, protowire.BytesType)
	dst = protowire.AppendVarint(dst, uint64(len(b)))
	return append(dst, b...)
}

// AppendUint64 appends a varint-typed uint64 field.
func AppendUint64(dst []byte, fieldNum int, v uint64) []byte {
	if v == 0 {
		return dst
	}
	dst = AppendTag(dst, fieldNum, protowire.VarintType)
	return protowire.AppendVarint(dst, v)
}

// AppendBool appends a varint-typed bool field.
func AppendBool(dst []byte, fieldNum int, v bool) []byte {
	if !v {
		return dst
	}
	dst = AppendTag(dst, fieldNum, protowire.VarintType)
	return protowire.AppendVarint(dst, 1)
}

// SizeBytesField returns the encoded size of a length-delimited field,
// including its tag.
func SizeBytesField(fieldNum int, b []byte) int {
	if len(b) == 0 {
		return 0
	}
	return SizeTag(fieldNum) + SizeVarint(uint64(len(b))) + len(b)
}

// SizeUint64Field returns the encoded size of a varint uint64 field.
func SizeUint64Field(fieldNum int, v uint64) int {
	if v == 0 {
		return 0
	}
	return SizeTag(fieldNum) + SizeVarint(v)
}

// SizeBoolField returns the encoded size of a varint bool field.
func SizeBoolField(fieldNum int, v bool) int {
	if !v {
		return 0
	}
	return SizeTag(fieldNum) + 1
}

// Field is a single decoded (field number, wire type, payload) unit
// produced by Split, used by Unmarshal implementations to walk an
// encoded message one field at a time.
type Field struct {
	Num     int
	Type    protowire.Type
	Varint  uint64
	Bytes   []byte
	Consumed int
}

// Next decodes the next field from b, returning the field (whose
// Consumed records how many bytes it took) and the remaining bytes of b.
// It returns io.ErrUnexpectedEOF if b is malformed.
func Next(b []byte) (Field, []byte, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return Field{}, nil, io.ErrUnexpectedEOF
	}
	rest := b[n:]
	f := Field{Num: int(num), Type: typ}
	switch typ {
	case protowire.VarintType:
		v, m := protowire.ConsumeVarint(rest)
		if m < 0 {
			return Field{}, nil, io.ErrUnexpectedEOF
		}
		f.Varint = v
		f.Consumed = n + m
		return f, rest[m:], nil
	case protowire.BytesType:
		v, m := protowire.ConsumeBytes(rest)
		if m < 0 {
			return Field{}, nil, io.ErrUnexpectedEOF
		}
		f.Bytes = v
		f.Consumed = n + m
		return f, rest[m:], nil
	case protowire.Fixed64Type:
		_, m := protowire.ConsumeFixed64(rest)
		if m < 0 {
			return Field{}, nil, io.ErrUnexpectedEOF
		}
		f.Consumed = n + m
		return f, rest[m:], nil
	case protowire.Fixed32Type:
		_, m := protowire.ConsumeFixed32(rest)
		if m < 0 {
			return Field{}, nil, io.ErrUnexpectedEOF
		}
		f.Consumed = n + m
		return f, rest[m:], nil
	default:
		m := protowire.ConsumeFieldValue(num, typ, rest)
		if m < 0 {
			return Field{}, nil, io.ErrUnexpectedEOF
		}
		f.Consumed = n + m
		return f, rest[m:], nil
	}
}
