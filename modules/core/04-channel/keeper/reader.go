package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
	channeltypes "github.com/ibcx-labs/tm-lightclient/modules/core/04-channel/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	host "github.com/ibcx-labs/tm-lightclient/modules/core/24-host"
	tmkeeper "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/keeper"
)

// channelStoreReader adapts a Keeper's store, its registered client
// keeper and light-client module to exported.ChannelReader. One is
// built per RecvPacket call.
type channelStoreReader struct {
	ctx    sdk.Context
	keeper Keeper
}

var _ exported.ChannelReader = channelStoreReader{}

func (r channelStoreReader) GetClientState(clientID string) (exported.ClientState, bool) {
	cs, found := tmkeeper.GetClientState(r.keeper.clientKeeper.ClientStore(r.ctx, clientID))
	if !found {
		return nil, false
	}
	return cs, true
}

func (r channelStoreReader) GetConsensusState(clientID string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetConsensusState(r.keeper.clientKeeper.ClientStore(r.ctx, clientID), height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r channelStoreReader) GetNextConsensusState(clientID string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetNextConsensusState(r.keeper.clientKeeper.ClientStore(r.ctx, clientID), height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r channelStoreReader) GetPreviousConsensusState(clientID string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetPreviousConsensusState(r.keeper.clientKeeper.ClientStore(r.ctx, clientID), height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r channelStoreReader) HostTimestamp() time.Time {
	return r.ctx.BlockTime()
}

func (r channelStoreReader) HostHeight() exported.Height {
	return clienttypes.NewHeight(0, uint64(r.ctx.BlockHeight()))
}

func (r channelStoreReader) GetClientUpdateTimeAndHeight(clientID string, height exported.Height) (time.Time, exported.Height, bool) {
	store := r.keeper.clientKeeper.ClientStore(r.ctx, clientID)
	processedTime, found := tmkeeper.GetProcessedTime(store, height)
	if !found {
		return time.Time{}, nil, false
	}
	processedHeight, found := tmkeeper.GetProcessedHeight(store, height)
	if !found {
		return time.Time{}, nil, false
	}
	return processedTime, processedHeight, true
}

func (r channelStoreReader) GetChannel(portID, channelID string) (exported.ChannelEndI, bool) {
	channel, found := r.keeper.GetChannel(r.ctx, portID, channelID)
	if !found {
		return nil, false
	}
	return channel, true
}

func (r channelStoreReader) GetConnection(connectionID string) (exported.ConnectionEndI, bool) {
	connection, found := r.keeper.GetConnection(r.ctx, connectionID)
	if !found {
		return nil, false
	}
	return connection, true
}

func (r channelStoreReader) GetNextSequenceRecv(portID, channelID string) (uint64, bool) {
	return r.keeper.GetNextSequenceRecv(r.ctx, portID, channelID)
}

func (r channelStoreReader) HasPacketReceipt(portID, channelID string, sequence uint64) bool {
	return r.keeper.HasPacketReceipt(r.ctx, portID, channelID, sequence)
}

// PacketCommitmentBytes recomputes the expected commitment the way
// channeltypes.CommitPacket does, the same hash the sender committed
// to in its own store.
func (r channelStoreReader) PacketCommitmentBytes(data []byte, timeoutHeight exported.Height, timeoutTimestamp uint64) []byte {
	h, ok := timeoutHeight.(clienttypes.Height)
	if !ok {
		h = clienttypes.NewHeight(timeoutHeight.GetRevisionNumber(), timeoutHeight.GetRevisionHeight())
	}
	return channeltypes.CommitPacket(data, h, timeoutTimestamp)
}

// BlockDelay converts delayPeriod into a number of blocks using a
// fixed nominal block time, the way ibc-go's connection keeper derives
// an expected-blocks-elapsed bound from a configured time delay absent
// a governance-set average block time parameter.
func (r channelStoreReader) BlockDelay(delayPeriod time.Duration) uint64 {
	if delayPeriod <= 0 {
		return 0
	}
	const nominalBlockTime = 6 * time.Second
	blocks := delayPeriod / nominalBlockTime
	if delayPeriod%nominalBlockTime != 0 {
		blocks++
	}
	return uint64(blocks)
}

// VerifyPacketCommitment delegates to the registered client's
// light-client module, building the Merkle path from the
// counterparty's prefix the way ClientState.VerifyPacketCommitment
// does internally for a concrete client.
func (r channelStoreReader) VerifyPacketCommitment(
	clientID string, height exported.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	counterpartyPrefix commitmenttypes.MerklePrefix,
	proof []byte, portID, channelID string, sequence uint64,
	commitmentBytes []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(counterpartyPrefix, host.PacketCommitmentPath(portID, channelID, sequence))
	if err != nil {
		return err
	}
	return r.keeper.clientModule.VerifyMembership(r.ctx, clientID, height, delayTimePeriod, delayBlockPeriod, proof, path, commitmentBytes)
}
