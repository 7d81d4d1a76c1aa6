package types

import (
	"io"

	"github.com/cosmos/gogoproto/proto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

func init() {
	proto.RegisterType((*Height)(nil), "ibc.core.client.v1.Height")
}

// Reset implements proto.Message.
func (h *Height) Reset() { *h = Height{} }

// ProtoMessage implements proto.Message.
func (*Height) ProtoMessage() {}

// Size returns the encoded length of h.
func (h *Height) Size() int {
	if h == nil {
		return 0
	}
	n := pbwire.SizeUint64Field(1, h.RevisionNumber)
	n += pbwire.SizeUint64Field(2, h.RevisionHeight)
	return n
}

// Marshal returns the protobuf encoding of h.
func (h *Height) Marshal() ([]byte, error) {
	size := h.Size()
	buf := make([]byte, 0, size)
	return h.MarshalAppend(buf)
}

// MarshalAppend appends the protobuf encoding of h to dst.
func (h *Height) MarshalAppend(dst []byte) ([]byte, error) {
	if h == nil {
		return dst, nil
	}
	dst = pbwire.AppendUint64(dst, 1, h.RevisionNumber)
	dst = pbwire.AppendUint64(dst, 2, h.RevisionHeight)
	return dst, nil
}

// Unmarshal parses the protobuf-encoded bytes in b into h.
func (h *Height) Unmarshal(b []byte) error {
	*h = Height{}
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
			h.RevisionNumber = f.Varint
		case 2:
			if f.Type != protowire.VarintType {
				return io.ErrUnexpectedEOF
			}
			h.RevisionHeight = f.Varint
		}
		b = rest
	}
	return nil
}
