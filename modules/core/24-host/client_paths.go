package host

import "fmt"

// ICS02/ICS03/ICS04 well-known path prefixes, grounded on ibc-go's
// modules/core/24-host/keys.go.
const (
	KeyClientStorePrefix       = "clients"
	KeyClientState             = "clientState"
	KeyConsensusStatePrefix    = "consensusStates"
	KeyConnectionPrefix        = "connections"
	KeyChannelEndPrefix        = "channelEnds"
	KeyChannelPrefix           = "channels"
	KeyPortPrefix              = "ports"
)

// ClientStatePath returns the client-store-relative path under which a
// client state is stored.
func ClientStatePath() string {
	return KeyClientState
}

// FullClientStateKey returns the store key under which the client
// state for clientID is stored: "clients/{clientID}/clientState".
func FullClientStateKey(clientID string) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, KeyClientState))
}

// ClientStateKey returns the client-store-relative key the light
// client module uses when addressing its own ClientStore (already
// scoped to clients/{clientID}/ by the host keeper).
func ClientStateKey() []byte {
	return []byte(KeyClientState)
}

// ConsensusStatePath returns the path at which a consensus state is
// stored, relative to a specific client's store.
func ConsensusStatePath(height fmt.Stringer) string {
	return fmt.Sprintf("%s/%s", KeyConsensusStatePrefix, height.String())
}

// ConsensusStateKey returns the client-store-relative key for the
// consensus state at the given height.
func ConsensusStateKey(height fmt.Stringer) []byte {
	return []byte(ConsensusStatePath(height))
}

// KeyProcessedTime and KeyProcessedHeight prefix the per-height metadata
// a client store keeps alongside each consensus state: the host time and
// height at which that consensus state was written, used by
// VerifyDelayPassed.
const (
	KeyProcessedTime   = "processedTime"
	KeyProcessedHeight = "processedHeight"
)

// ProcessedTimeKey returns the client-store-relative key for the host
// timestamp recorded when the consensus state at height was written.
func ProcessedTimeKey(height fmt.Stringer) []byte {
	return []byte(fmt.Sprintf("%s/%s", KeyProcessedTime, height.String()))
}

// ProcessedHeightKey returns the client-store-relative key for the host
// height recorded when the consensus state at height was written.
func ProcessedHeightKey(height fmt.Stringer) []byte {
	return []byte(fmt.Sprintf("%s/%s", KeyProcessedHeight, height.String()))
}

// FullClientPath joins a client ID with a client-store-relative path
// (as used when constructing a MerklePath for a counterparty proof
// query, e.g. "clients/07-tendermint-0/clientState").
func FullClientPath(clientID, path string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, path)
}

// FullConsensusStatePath joins a client ID and height into the full
// counterparty-facing consensus state path.
func FullConsensusStatePath(clientID string, height fmt.Stringer) string {
	return FullClientPath(clientID, ConsensusStatePath(height))
}

// ConnectionPath returns the path under which a connection end is
// stored, given a connection identifier.
func ConnectionPath(connectionID string) string {
	return fmt.Sprintf("%s/%s", KeyConnectionPrefix, connectionID)
}

// ConnectionKey returns the store key for a connection end.
func ConnectionKey(connectionID string) []byte {
	return []byte(ConnectionPath(connectionID))
}

// ChannelPath returns the path under which a channel end is stored.
func ChannelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s", KeyChannelEndPrefix, channelPath(portID, channelID))
}

// ChannelKey returns the store key for a channel end.
func ChannelKey(portID, channelID string) []byte {
	return []byte(ChannelPath(portID, channelID))
}

// PortPath returns the path under which a port's capability is bound.
func PortPath(portID string) string {
	return fmt.Sprintf("%s/%s", KeyPortPrefix, portID)
}

func channelPath(portID, channelID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", KeyPortPrefix, portID, KeyChannelPrefix, channelID)
}
