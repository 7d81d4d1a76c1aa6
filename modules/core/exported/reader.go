package exported

import (
	"time"

	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
)

// ClientReader is the narrow read-only view of host state a client's
// verification logic depends on (spec component C8, "Reader (client)").
// Implementations back it with a real KVStore in production and with an
// in-memory fake in tests.
type ClientReader interface {
	GetClientState(clientID string) (ClientState, bool)
	GetConsensusState(clientID string, height Height) (ConsensusState, bool)
	GetNextConsensusState(clientID string, height Height) (ConsensusState, bool)
	GetPreviousConsensusState(clientID string, height Height) (ConsensusState, bool)

	HostTimestamp() time.Time
	HostHeight() Height

	// GetClientUpdateTimeAndHeight returns the host time and height at
	// which the consensus state at height was stored, used by
	// VerifyDelayPassed.
	GetClientUpdateTimeAndHeight(clientID string, height Height) (time.Time, Height, bool)
}

// ChannelReader extends ClientReader with the channel/connection/packet
// state recv_packet needs (spec component C8, "Reader (channel)").
type ChannelReader interface {
	ClientReader

	GetChannel(portID, channelID string) (ChannelEndI, bool)
	GetConnection(connectionID string) (ConnectionEndI, bool)
	GetNextSequenceRecv(portID, channelID string) (uint64, bool)
	HasPacketReceipt(portID, channelID string, sequence uint64) bool

	// PacketCommitmentBytes recomputes the expected packet commitment
	// from packet data and timeout fields, the same hash the sender
	// committed to.
	PacketCommitmentBytes(data []byte, timeoutHeight Height, timeoutTimestamp uint64) []byte

	// BlockDelay converts a connection's configured time delay into an
	// equivalent number of blocks, using the host's average block time.
	BlockDelay(delayPeriod time.Duration) uint64

	// VerifyPacketCommitment checks a Merkle-inclusion proof of the
	// packet commitment the counterparty chain stored for sequence
	// under portID/channelID (the counterparty's own identifiers),
	// folding in the client-frozen check the concrete client state
	// performs internally. It bundles what recv_packet.rs keeps as two
	// separate steps (an explicit is_frozen() check, then
	// verify_packet_data) because this client's VerifyMembership
	// already rejects a frozen client before checking the proof.
	VerifyPacketCommitment(
		clientID string, height Height,
		delayTimePeriod, delayBlockPeriod uint64,
		counterpartyPrefix commitmenttypes.MerklePrefix,
		proof []byte, portID, channelID string, sequence uint64,
		commitmentBytes []byte,
	) error
}

// ChannelEndI is the minimal channel-state view RecvPacket needs.
type ChannelEndI interface {
	IsOpen() bool
	GetOrdering() string
	GetCounterpartyPortID() string
	GetCounterpartyChannelID() string
	GetConnectionHops() []string
}

// ConnectionEndI is the minimal connection-state view RecvPacket needs.
type ConnectionEndI interface {
	IsOpen() bool
	GetDelayPeriod() time.Duration
	GetClientID() string
	GetCounterpartyPrefix() commitmenttypes.MerklePrefix
}
