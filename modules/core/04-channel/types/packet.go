package types

import (
	"crypto/sha256"
	"encoding/binary"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
)

// Packet defines an IBC packet, the unit of cross-chain data transfer.
type Packet struct {
	Sequence           uint64            `protobuf:"varint,1,opt,name=sequence,proto3"`
	SourcePort         string            `protobuf:"bytes,2,opt,name=source_port,json=sourcePort,proto3"`
	SourceChannel      string            `protobuf:"bytes,3,opt,name=source_channel,json=sourceChannel,proto3"`
	DestinationPort    string            `protobuf:"bytes,4,opt,name=destination_port,json=destinationPort,proto3"`
	DestinationChannel string            `protobuf:"bytes,5,opt,name=destination_channel,json=destinationChannel,proto3"`
	Data               []byte            `protobuf:"bytes,6,opt,name=data,proto3"`
	TimeoutHeight      clienttypes.Height `protobuf:"bytes,7,opt,name=timeout_height,json=timeoutHeight,proto3"`
	TimeoutTimestamp   uint64            `protobuf:"varint,8,opt,name=timeout_timestamp,json=timeoutTimestamp,proto3"`
}

// ValidateBasic performs stateless validation of a Packet's fields.
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return ErrInvalidPacket
	}
	if len(p.Data) == 0 {
		return ErrInvalidPacketData
	}
	if p.TimeoutHeight.IsZero() && p.TimeoutTimestamp == 0 {
		return ErrInvalidPacketTimeout
	}
	return nil
}

// CommitPacket returns the commitment bytes a recipient is expected to
// verify against, computed as sha256(timeout_timestamp_bigendian ||
// timeout_revision_number_bigendian || timeout_revision_height_bigendian
// || sha256(data)), the ICS-04-specified packet commitment encoding.
func CommitPacket(data []byte, timeoutHeight clienttypes.Height, timeoutTimestamp uint64) []byte {
	buf := make([]byte, 0, 8+8+8+sha256.Size)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], timeoutTimestamp)
	buf = append(buf, ts[:]...)

	var rn [8]byte
	binary.BigEndian.PutUint64(rn[:], timeoutHeight.RevisionNumber)
	buf = append(buf, rn[:]...)

	var rh [8]byte
	binary.BigEndian.PutUint64(rh[:], timeoutHeight.RevisionHeight)
	buf = append(buf, rh[:]...)

	dataHash := sha256.Sum256(data)
	buf = append(buf, dataHash[:]...)

	hash := sha256.Sum256(buf)
	return hash[:]
}
