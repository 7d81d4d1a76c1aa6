package types

import (
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// Size returns the encoded length of h.
func (h *Header) Size() int {
	n := sizeEmbeddedMessage(1, h.SignedHeader)
	n += sizeEmbeddedMessage(2, h.ValidatorSet)
	trustedHeightBz, _ := h.TrustedHeight.Marshal()
	n += sizeEmbedded(3, trustedHeightBz)
	n += sizeEmbeddedMessage(4, h.TrustedValidators)
	return n
}

func sizeEmbeddedMessage(fieldNum int, m interface{ Size() int }) int {
	if m == nil {
		return 0
	}
	l := m.Size()
	return pbwire.SizeTag(fieldNum) + pbwire.SizeVarint(uint64(l)) + l
}

// Marshal encodes h in wire format.
func (h *Header) Marshal() ([]byte, error) {
	return h.MarshalAppend(nil)
}

// MarshalAppend appends h's wire encoding to dst.
func (h *Header) MarshalAppend(dst []byte) ([]byte, error) {
	if h.SignedHeader != nil {
		bz, err := h.SignedHeader.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 1, bz)
	}
	if h.ValidatorSet != nil {
		bz, err := h.ValidatorSet.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 2, bz)
	}
	trustedHeightBz, err := h.TrustedHeight.Marshal()
	if err != nil {
		return nil, err
	}
	dst = pbwire.AppendBytes(dst, 3, trustedHeightBz)

	if h.TrustedValidators != nil {
		bz, err := h.TrustedValidators.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 4, bz)
	}
	return dst, nil
}

// Unmarshal decodes b into h, replacing its contents.
func (h *Header) Unmarshal(b []byte) error {
	*h = Header{}
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		switch field.Num {
		case 1:
			h.SignedHeader = new(cmtproto.SignedHeader)
			if err := h.SignedHeader.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 2:
			h.ValidatorSet = new(cmtproto.ValidatorSet)
			if err := h.ValidatorSet.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 3:
			if err := h.TrustedHeight.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 4:
			h.TrustedValidators = new(cmtproto.ValidatorSet)
			if err := h.TrustedValidators.Unmarshal(field.Bytes); err != nil {
				return err
			}
		}
	}
	return nil
}
