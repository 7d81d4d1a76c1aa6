package types

import (
	"time"

	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
)

// ConsensusState defines the consensus state snapshot a Tendermint
// client stores at a particular height: the block timestamp, the
// app-hash committed to at that height, and the hash of the next
// validator set, used to bootstrap verification of the following header.
type ConsensusState struct {
	Timestamp          time.Time
	Root               commitmenttypes.MerkleRoot
	NextValidatorsHash []byte
}

// NewConsensusState constructs a new ConsensusState.
func NewConsensusState(timestamp time.Time, root commitmenttypes.MerkleRoot, nextValsHash []byte) ConsensusState {
	return ConsensusState{Timestamp: timestamp, Root: root, NextValidatorsHash: nextValsHash}
}

// ClientType returns the client type: "07-tendermint".
func (ConsensusState) ClientType() string { return "07-tendermint" }

// GetTimestamp returns the block timestamp as nanoseconds since the
// Unix epoch, matching the exported.ConsensusState contract.
func (cs ConsensusState) GetTimestamp() uint64 { return uint64(cs.Timestamp.UnixNano()) }

// GetRoot returns the commitment root to verify proofs against.
func (cs ConsensusState) GetRoot() commitmenttypes.MerkleRoot { return cs.Root }
