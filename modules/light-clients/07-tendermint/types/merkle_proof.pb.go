package types

import (
	"io"

	ics23 "github.com/cosmos/ics23/go"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// Size returns the encoded length of the repeated proofs field, field
// number 1 of ibc.core.commitment.v1.MerkleProof.
func (m *RawMerkleProof) Size() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, p := range m.Proofs {
		l := p.Size()
		n += pbwire.SizeTag(1) + pbwire.SizeVarint(uint64(l)) + l
	}
	return n
}

// Marshal encodes m in protobuf wire format.
func (m *RawMerkleProof) Marshal() ([]byte, error) {
	return m.MarshalAppend(nil)
}

// MarshalAppend appends m's protobuf wire encoding to dst.
func (m *RawMerkleProof) MarshalAppend(dst []byte) ([]byte, error) {
	if m == nil {
		return dst, nil
	}
	for _, p := range m.Proofs {
		bz, err := p.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 1, bz)
	}
	return dst, nil
}

// Unmarshal decodes b into m, replacing its contents.
func (m *RawMerkleProof) Unmarshal(b []byte) error {
	m.Proofs = nil
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		switch field.Num {
		case 1:
			if field.Type != protowire.BytesType {
				return io.ErrUnexpectedEOF
			}
			proof := new(ics23.CommitmentProof)
			if err := proof.Unmarshal(field.Bytes); err != nil {
				return err
			}
			m.Proofs = append(m.Proofs, proof)
		}
	}
	return nil
}
