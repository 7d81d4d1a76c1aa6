package types

import (
	"io"
	"time"

	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

func init() {
	proto.RegisterType((*MerklePrefix)(nil), "ibc.core.connection.v1.MerklePrefix")
	proto.RegisterType((*Counterparty)(nil), "ibc.core.connection.v1.Counterparty")
	proto.RegisterType((*ConnectionEnd)(nil), "ibc.core.connection.v1.ConnectionEnd")
}

// Reset implements proto.Message.
func (m *MerklePrefix) Reset() { *m = MerklePrefix{} }

// ProtoMessage implements proto.Message.
func (*MerklePrefix) ProtoMessage() {}

// Size returns the encoded length of m.
func (m *MerklePrefix) Size() int {
	if m == nil {
		return 0
	}
	return pbwire.SizeBytesField(1, m.KeyPrefix)
}

// Marshal returns the protobuf encoding of m.
func (m *MerklePrefix) Marshal() ([]byte, error) {
	return m.MarshalAppend(make([]byte, 0, m.Size()))
}

// MarshalAppend appends the protobuf encoding of m to dst.
func (m *MerklePrefix) MarshalAppend(dst []byte) ([]byte, error) {
	if m == nil {
		return dst, nil
	}
	if len(m.KeyPrefix) > 0 {
		dst = pbwire.AppendBytes(dst, 1, m.KeyPrefix)
	}
	return dst, nil
}

// Unmarshal parses the protobuf-encoded bytes in b into m.
func (m *MerklePrefix) Unmarshal(b []byte) error {
	*m = MerklePrefix{}
	for len(b) > 0 {
		f, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		if f.Num == 1 {
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			m.KeyPrefix = append([]byte(nil), f.Bytes...)
		}
		b = rest
	}
	return nil
}

// Reset implements proto.Message.
func (c *Counterparty) Reset() { *c = Counterparty{} }

// ProtoMessage implements proto.Message.
func (*Counterparty) ProtoMessage() {}

// Size returns the encoded length of c.
func (c *Counterparty) Size() int {
	if c == nil {
		return 0
	}
	n := pbwire.SizeBytesField(1, []byte(c.ClientId))
	n += pbwire.SizeBytesField(2, []byte(c.ConnectionId))
	n += sizeEmbeddedMessage(3, &c.Prefix)
	return n
}

// Marshal returns the protobuf encoding of c.
func (c *Counterparty) Marshal() ([]byte, error) {
	return c.MarshalAppend(make([]byte, 0, c.Size()))
}

// MarshalAppend appends the protobuf encoding of c to dst.
func (c *Counterparty) MarshalAppend(dst []byte) ([]byte, error) {
	if c == nil {
		return dst, nil
	}
	if len(c.ClientId) > 0 {
		dst = pbwire.AppendBytes(dst, 1, []byte(c.ClientId))
	}
	if len(c.ConnectionId) > 0 {
		dst = pbwire.AppendBytes(dst, 2, []byte(c.ConnectionId))
	}
	prefixBz, err := c.Prefix.Marshal()
	if err != nil {
		return nil, err
	}
	if len(prefixBz) > 0 {
		dst = pbwire.AppendBytes(dst, 3, prefixBz)
	}
	return dst, nil
}

// Unmarshal parses the protobuf-encoded bytes in b into c.
func (c *Counterparty) Unmarshal(b []byte) error {
	*c = Counterparty{}
	for len(b) > 0 {
		f, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		switch f.Num {
		case 1:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.ClientId = string(f.Bytes)
		case 2:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.ConnectionId = string(f.Bytes)
		case 3:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			if err := c.Prefix.Unmarshal(f.Bytes); err != nil {
				return err
			}
		}
		b = rest
	}
	return nil
}

// Reset implements proto.Message.
func (c *ConnectionEnd) Reset() { *c = ConnectionEnd{} }

// ProtoMessage implements proto.Message.
func (*ConnectionEnd) ProtoMessage() {}

// Size returns the encoded length of c. Field 2 (Versions in real
// ibc-go) is unused: this module pins a single implicit connection
// version and never negotiates others, so there is nothing to encode.
func (c *ConnectionEnd) Size() int {
	if c == nil {
		return 0
	}
	n := pbwire.SizeBytesField(1, []byte(c.ClientId))
	n += sizeEmbeddedMessage(3, &c.Counterparty)
	n += pbwire.SizeUint64Field(4, uint64(c.State))
	n += pbwire.SizeUint64Field(5, uint64(c.DelayPeriod))
	return n
}

// Marshal returns the protobuf encoding of c.
func (c *ConnectionEnd) Marshal() ([]byte, error) {
	return c.MarshalAppend(make([]byte, 0, c.Size()))
}

// MarshalAppend appends the protobuf encoding of c to dst.
func (c *ConnectionEnd) MarshalAppend(dst []byte) ([]byte, error) {
	if c == nil {
		return dst, nil
	}
	if len(c.ClientId) > 0 {
		dst = pbwire.AppendBytes(dst, 1, []byte(c.ClientId))
	}
	cpBz, err := c.Counterparty.Marshal()
	if err != nil {
		return nil, err
	}
	if len(cpBz) > 0 {
		dst = pbwire.AppendBytes(dst, 3, cpBz)
	}
	dst = pbwire.AppendUint64(dst, 4, uint64(c.State))
	dst = pbwire.AppendUint64(dst, 5, uint64(c.DelayPeriod))
	return dst, nil
}

// Unmarshal parses the protobuf-encoded bytes in b into c.
func (c *ConnectionEnd) Unmarshal(b []byte) error {
	*c = ConnectionEnd{}
	for len(b) > 0 {
		f, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		switch f.Num {
		case 1:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.ClientId = string(f.Bytes)
		case 3:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			if err := c.Counterparty.Unmarshal(f.Bytes); err != nil {
				return err
			}
		case 4:
			if f.Type != protowire.VarintType {
				return io.ErrUnexpectedEOF
			}
			c.State = State(f.Varint)
		case 5:
			if f.Type != protowire.VarintType {
				return io.ErrUnexpectedEOF
			}
			c.DelayPeriod = time.Duration(f.Varint)
		}
		b = rest
	}
	return nil
}

func sizeEmbeddedMessage(fieldNum int, m interface{ Size() int }) int {
	l := m.Size()
	if l == 0 {
		return 0
	}
	return pbwire.SizeTag(fieldNum) + pbwire.SizeVarint(uint64(l)) + l
}
