package types

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// Size returns the encoded length of f.
func (f Fraction) Size() int {
	n := pbwire.SizeUint64Field(1, f.Numerator)
	n += pbwire.SizeUint64Field(2, f.Denominator)
	return n
}

// Marshal encodes f in protobuf wire format.
func (f Fraction) Marshal() ([]byte, error) {
	return f.MarshalAppend(nil)
}

// MarshalAppend appends f's protobuf wire encoding to dst.
func (f Fraction) MarshalAppend(dst []byte) ([]byte, error) {
	dst = pbwire.AppendUint64(dst, 1, f.Numerator)
	dst = pbwire.AppendUint64(dst, 2, f.Denominator)
	return dst, nil
}

// Unmarshal decodes b into f, replacing its contents.
func (f *Fraction) Unmarshal(b []byte) error {
	*f = Fraction{}
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		if field.Type != protowire.VarintType {
			continue
		}
		switch field.Num {
		case 1:
			f.Numerator = field.Varint
		case 2:
			f.Denominator = field.Varint
		}
	}
	return nil
}
