package keeper

import (
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/ibcx-labs/tm-lightclient/modules/core/03-connection/types"
	channeltypes "github.com/ibcx-labs/tm-lightclient/modules/core/04-channel/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	host "github.com/ibcx-labs/tm-lightclient/modules/core/24-host"
	tmkeeper "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/keeper"
)

// ClientModule is the narrow slice of exported.LightClientModule the
// channel keeper needs to check a client's status and verify a packet
// commitment proof against it.
type ClientModule interface {
	Status(ctx sdk.Context, clientID string) exported.Status
	VerifyMembership(
		ctx sdk.Context, clientID string, height exported.Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path exported.Path, value []byte,
	) error
}

// Keeper stores channel and connection ends, packet sequences and
// receipts, and dispatches proof verification to the registered
// client's light-client module. This module wires exactly one client
// type (07-tendermint), so clientKeeper is also held directly for the
// ClientReader-shaped lookups (GetClientState and friends) a
// exported.ChannelReader must still expose even when RecvPacket itself
// never calls them.
type Keeper struct {
	storeKey     storetypes.StoreKey
	clientModule ClientModule
	clientKeeper tmkeeper.Keeper
}

// NewKeeper constructs a channel Keeper.
func NewKeeper(storeKey storetypes.StoreKey, clientModule ClientModule, clientKeeper tmkeeper.Keeper) Keeper {
	return Keeper{storeKey: storeKey, clientModule: clientModule, clientKeeper: clientKeeper}
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// GetChannel reads and unmarshals the channel end stored at
// port/channel.
func (k Keeper) GetChannel(ctx sdk.Context, portID, channelID string) (channeltypes.ChannelEnd, bool) {
	bz := k.store(ctx).Get(host.ChannelKey(portID, channelID))
	if len(bz) == 0 {
		return channeltypes.ChannelEnd{}, false
	}
	var channel channeltypes.ChannelEnd
	if err := channel.Unmarshal(bz); err != nil {
		return channeltypes.ChannelEnd{}, false
	}
	return channel, true
}

// SetChannel marshals and writes a channel end.
func (k Keeper) SetChannel(ctx sdk.Context, portID, channelID string, channel channeltypes.ChannelEnd) {
	bz, err := channel.Marshal()
	if err != nil {
		panic(err)
	}
	k.store(ctx).Set(host.ChannelKey(portID, channelID), bz)
}

// GetConnection reads and unmarshals the connection end stored at
// connectionID.
func (k Keeper) GetConnection(ctx sdk.Context, connectionID string) (connectiontypes.ConnectionEnd, bool) {
	bz := k.store(ctx).Get(host.ConnectionKey(connectionID))
	if len(bz) == 0 {
		return connectiontypes.ConnectionEnd{}, false
	}
	var connection connectiontypes.ConnectionEnd
	if err := connection.Unmarshal(bz); err != nil {
		return connectiontypes.ConnectionEnd{}, false
	}
	return connection, true
}

// SetConnection marshals and writes a connection end.
func (k Keeper) SetConnection(ctx sdk.Context, connectionID string, connection connectiontypes.ConnectionEnd) {
	bz, err := connection.Marshal()
	if err != nil {
		panic(err)
	}
	k.store(ctx).Set(host.ConnectionKey(connectionID), bz)
}

// GetNextSequenceRecv returns the next expected receive sequence for
// an ORDERED channel.
func (k Keeper) GetNextSequenceRecv(ctx sdk.Context, portID, channelID string) (uint64, bool) {
	bz := k.store(ctx).Get(host.NextSequenceRecvKey(portID, channelID))
	if len(bz) == 0 {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

// SetNextSequenceRecv records the next expected receive sequence.
func (k Keeper) SetNextSequenceRecv(ctx sdk.Context, portID, channelID string, sequence uint64) {
	k.store(ctx).Set(host.NextSequenceRecvKey(portID, channelID), sdk.Uint64ToBigEndian(sequence))
}

// HasPacketReceipt reports whether a receipt has been recorded for
// sequence on an UNORDERED channel.
func (k Keeper) HasPacketReceipt(ctx sdk.Context, portID, channelID string, sequence uint64) bool {
	return k.store(ctx).Has(host.PacketReceiptKey(portID, channelID, sequence))
}

// SetPacketReceipt records a (contentless) receipt for sequence.
func (k Keeper) SetPacketReceipt(ctx sdk.Context, portID, channelID string, sequence uint64) {
	k.store(ctx).Set(host.PacketReceiptKey(portID, channelID, sequence), []byte(channeltypes.Receipt))
}

// reader builds the exported.ChannelReader RecvPacket runs against for
// a single call: the channel/connection/packet state under k's store,
// plus delegated ClientReader lookups against the registered client's
// own store and light-client module.
func (k Keeper) reader(ctx sdk.Context) channelStoreReader {
	return channelStoreReader{ctx: ctx, keeper: k}
}

// RecvPacket verifies msg against the current channel/connection/client
// state, then applies the resulting sequencing bookkeeping and emits a
// ReceivePacket event. A PacketResult.NoOp outcome (replay) applies no
// writes.
func (k Keeper) RecvPacket(ctx sdk.Context, msg channeltypes.MsgRecvPacket) error {
	result, err := RecvPacket(k.reader(ctx), msg)
	if err != nil {
		return err
	}

	if !result.NoOp {
		if result.Ordered {
			k.SetNextSequenceRecv(ctx, result.PortId, result.ChannelId, result.NextSequenceRecv)
		} else {
			k.SetPacketReceipt(ctx, result.PortId, result.ChannelId, result.Sequence)
		}
	}

	channel, _ := k.GetChannel(ctx, msg.Packet.DestinationPort, msg.Packet.DestinationChannel)
	connectionID := ""
	if hops := channel.GetConnectionHops(); len(hops) > 0 {
		connectionID = hops[0]
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		channeltypes.EventTypeReceivePacket,
		sdk.NewAttribute(channeltypes.AttributeKeyData, string(msg.Packet.Data)),
		sdk.NewAttribute(channeltypes.AttributeKeyTimeoutHeight, msg.Packet.TimeoutHeight.String()),
		sdk.NewAttribute(channeltypes.AttributeKeyTimeoutTimestamp, strconv.FormatUint(msg.Packet.TimeoutTimestamp, 10)),
		sdk.NewAttribute(channeltypes.AttributeKeySequence, strconv.FormatUint(msg.Packet.Sequence, 10)),
		sdk.NewAttribute(channeltypes.AttributeKeySrcPort, msg.Packet.SourcePort),
		sdk.NewAttribute(channeltypes.AttributeKeySrcChannel, msg.Packet.SourceChannel),
		sdk.NewAttribute(channeltypes.AttributeKeyDstPort, msg.Packet.DestinationPort),
		sdk.NewAttribute(channeltypes.AttributeKeyDstChannel, msg.Packet.DestinationChannel),
		sdk.NewAttribute(channeltypes.AttributeKeyChannelOrdering, channel.GetOrdering()),
		sdk.NewAttribute(channeltypes.AttributeKeyConnection, connectionID),
	))
	return nil
}

