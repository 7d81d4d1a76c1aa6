// Package types holds the minimal connection-end representation the
// light-client verification core and the recv_packet handler need:
// just enough of ICS-03 to resolve a channel's client and delay period.
package types

import (
	"time"

	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
)

// State is the state of a connection handshake.
type State int32

const (
	UNINITIALIZED State = iota
	INIT
	TRYOPEN
	OPEN
)

// String returns a human-readable connection state name.
func (s State) String() string {
	switch s {
	case INIT:
		return "INIT"
	case TRYOPEN:
		return "TRYOPEN"
	case OPEN:
		return "OPEN"
	default:
		return "UNINITIALIZED"
	}
}

// Counterparty holds the counterparty chain's identifiers for a
// connection end.
type Counterparty struct {
	ClientId     string       `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3"`
	ConnectionId string       `protobuf:"bytes,2,opt,name=connection_id,json=connectionId,proto3"`
	Prefix       MerklePrefix `protobuf:"bytes,3,opt,name=prefix,proto3"`
}

// MerklePrefix mirrors commitmenttypes.MerklePrefix's wire shape.
// ConnectionEnd keeps its own copy, the way ibc-go's generated
// connection.pb.go does not import the commitment package's Go type
// even though the proto field is identical; ToCommitmentPrefix bridges
// the two for callers that need the ICS-23 type.
type MerklePrefix struct {
	KeyPrefix []byte `protobuf:"bytes,1,opt,name=key_prefix,json=keyPrefix,proto3"`
}

// ToCommitmentPrefix converts p to the 23-commitment package's
// equivalent type.
func (p MerklePrefix) ToCommitmentPrefix() commitmenttypes.MerklePrefix {
	return commitmenttypes.NewMerklePrefix(p.KeyPrefix)
}

// ConnectionEnd defines an ICS-03 connection between two chains.
type ConnectionEnd struct {
	ClientId     string       `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3"`
	Counterparty Counterparty `protobuf:"bytes,3,opt,name=counterparty,proto3"`
	State        State        `protobuf:"varint,4,opt,name=state,proto3,enum=State"`
	DelayPeriod  time.Duration `protobuf:"varint,5,opt,name=delay_period,json=delayPeriod,proto3,casttype=time.Duration"`
}

// IsOpen returns true if the connection is in the OPEN state.
func (c ConnectionEnd) IsOpen() bool { return c.State == OPEN }

// GetDelayPeriod returns the connection's configured time-delay period.
func (c ConnectionEnd) GetDelayPeriod() time.Duration { return c.DelayPeriod }

// GetClientID returns the client identifier associated with the
// connection on this chain.
func (c ConnectionEnd) GetClientID() string { return c.ClientId }

// GetCounterpartyPrefix returns the counterparty chain's store prefix,
// converted to the 23-commitment package's MerklePrefix, for building
// the Merkle path a proof against the counterparty is checked under.
func (c ConnectionEnd) GetCounterpartyPrefix() commitmenttypes.MerklePrefix {
	return c.Counterparty.Prefix.ToCommitmentPrefix()
}
