package types

import (
	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// Size returns the encoded length of m.
func (m *Misbehaviour) Size() int {
	n := pbwire.SizeBytesField(1, []byte(m.ClientId))
	n += sizeEmbeddedMessage(2, m.Header1)
	n += sizeEmbeddedMessage(3, m.Header2)
	return n
}

// Marshal encodes m in wire format.
func (m *Misbehaviour) Marshal() ([]byte, error) {
	return m.MarshalAppend(nil)
}

// MarshalAppend appends m's wire encoding to dst.
func (m *Misbehaviour) MarshalAppend(dst []byte) ([]byte, error) {
	if m.ClientId != "" {
		dst = pbwire.AppendBytes(dst, 1, []byte(m.ClientId))
	}
	if m.Header1 != nil {
		bz, err := m.Header1.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 2, bz)
	}
	if m.Header2 != nil {
		bz, err := m.Header2.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 3, bz)
	}
	return dst, nil
}

// Unmarshal decodes b into m, replacing its contents.
func (m *Misbehaviour) Unmarshal(b []byte) error {
	*m = Misbehaviour{}
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		switch field.Num {
		case 1:
			m.ClientId = string(field.Bytes)
		case 2:
			m.Header1 = new(Header)
			if err := m.Header1.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 3:
			m.Header2 = new(Header)
			if err := m.Header2.Unmarshal(field.Bytes); err != nil {
				return err
			}
		}
	}
	return nil
}
