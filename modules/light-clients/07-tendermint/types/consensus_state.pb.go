package types

import (
	"time"

	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// marshalMerkleRoot encodes a MerkleRoot as its one-field wire message.
func marshalMerkleRoot(r commitmenttypes.MerkleRoot) []byte {
	return pbwire.AppendBytes(nil, 1, r.Hash)
}

// unmarshalMerkleRoot decodes a MerkleRoot wire message.
func unmarshalMerkleRoot(b []byte) (commitmenttypes.MerkleRoot, error) {
	var r commitmenttypes.MerkleRoot
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return r, err
		}
		b = rest
		if field.Num == 1 {
			r.Hash = field.Bytes
		}
	}
	return r, nil
}

// Size returns the encoded length of cs.
func (cs *ConsensusState) Size() int {
	n := pbwire.SizeUint64Field(1, uint64(cs.Timestamp.UnixNano()))
	n += sizeEmbedded(2, marshalMerkleRoot(cs.Root))
	n += pbwire.SizeBytesField(3, cs.NextValidatorsHash)
	return n
}

// Marshal encodes cs in wire format.
func (cs *ConsensusState) Marshal() ([]byte, error) {
	return cs.MarshalAppend(nil)
}

// MarshalAppend appends cs's wire encoding to dst.
func (cs *ConsensusState) MarshalAppend(dst []byte) ([]byte, error) {
	dst = pbwire.AppendUint64(dst, 1, uint64(cs.Timestamp.UnixNano()))
	dst = pbwire.AppendBytes(dst, 2, marshalMerkleRoot(cs.Root))
	if len(cs.NextValidatorsHash) > 0 {
		dst = pbwire.AppendBytes(dst, 3, cs.NextValidatorsHash)
	}
	return dst, nil
}

// Unmarshal decodes b into cs, replacing its contents.
func (cs *ConsensusState) Unmarshal(b []byte) error {
	*cs = ConsensusState{}
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		switch field.Num {
		case 1:
			cs.Timestamp = time.Unix(0, int64(field.Varint)).UTC()
		case 2:
			root, err := unmarshalMerkleRoot(field.Bytes)
			if err != nil {
				return err
			}
			cs.Root = root
		case 3:
			cs.NextValidatorsHash = field.Bytes
		}
	}
	return nil
}
