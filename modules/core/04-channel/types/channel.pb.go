package types

import (
	"io"

	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

func init() {
	proto.RegisterType((*Counterparty)(nil), "ibc.core.channel.v1.Counterparty")
	proto.RegisterType((*ChannelEnd)(nil), "ibc.core.channel.v1.Channel")
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
	n := pbwire.SizeBytesField(1, []byte(c.PortId))
	n += pbwire.SizeBytesField(2, []byte(c.ChannelId))
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
	if len(c.PortId) > 0 {
		dst = pbwire.AppendBytes(dst, 1, []byte(c.PortId))
	}
	if len(c.ChannelId) > 0 {
		dst = pbwire.AppendBytes(dst, 2, []byte(c.ChannelId))
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
			c.PortId = string(f.Bytes)
		case 2:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.ChannelId = string(f.Bytes)
		}
		b = rest
	}
	return nil
}

// Reset implements proto.Message.
func (c *ChannelEnd) Reset() { *c = ChannelEnd{} }

// ProtoMessage implements proto.Message.
func (*ChannelEnd) ProtoMessage() {}

// Size returns the encoded length of c.
func (c *ChannelEnd) Size() int {
	if c == nil {
		return 0
	}
	n := pbwire.SizeUint64Field(1, uint64(c.State))
	n += pbwire.SizeUint64Field(2, uint64(c.Ordering))
	n += sizeEmbeddedMessage(3, &c.Counterparty)
	for _, hop := range c.ConnectionHops {
		n += pbwire.SizeBytesField(4, []byte(hop))
	}
	n += pbwire.SizeBytesField(5, []byte(c.Version))
	return n
}

// Marshal returns the protobuf encoding of c.
func (c *ChannelEnd) Marshal() ([]byte, error) {
	return c.MarshalAppend(make([]byte, 0, c.Size()))
}

// MarshalAppend appends the protobuf encoding of c to dst.
func (c *ChannelEnd) MarshalAppend(dst []byte) ([]byte, error) {
	if c == nil {
		return dst, nil
	}
	dst = pbwire.AppendUint64(dst, 1, uint64(c.State))
	dst = pbwire.AppendUint64(dst, 2, uint64(c.Ordering))
	cpBz, err := c.Counterparty.Marshal()
	if err != nil {
		return nil, err
	}
	if len(cpBz) > 0 {
		dst = pbwire.AppendBytes(dst, 3, cpBz)
	}
	for _, hop := range c.ConnectionHops {
		dst = pbwire.AppendBytes(dst, 4, []byte(hop))
	}
	if len(c.Version) > 0 {
		dst = pbwire.AppendBytes(dst, 5, []byte(c.Version))
	}
	return dst, nil
}

// Unmarshal parses the protobuf-encoded bytes in b into c.
func (c *ChannelEnd) Unmarshal(b []byte) error {
	*c = ChannelEnd{}
	for len(b) > 0 {
		f, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		switch f.Num {
		case 1:
			if f.Type != protowire.VarintType {
				return io.ErrUnexpectedEOF
			}
			c.State = State(f.Varint)
		case 2:
			if f.Type != protowire.VarintType {
				return io.ErrUnexpectedEOF
			}
			c.Ordering = Order(f.Varint)
		case 3:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			if err := c.Counterparty.Unmarshal(f.Bytes); err != nil {
				return err
			}
		case 4:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.ConnectionHops = append(c.ConnectionHops, string(f.Bytes))
		case 5:
			if f.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			c.Version = string(f.Bytes)
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
