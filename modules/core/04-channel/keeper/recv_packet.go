// Package keeper implements the ICS-04 recv_packet handler: a pure
// decision function grounded line-for-line on
// ics04_channel::handler::recv_packet::process, and a Keeper adapter
// that wires it to a real sdk.Context/KVStore and applies its result.
package keeper

import (
	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/ibcx-labs/tm-lightclient/modules/core/04-channel/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

// RecvPacket validates an incoming packet delivery against reader and
// computes the sequencing outcome a successful delivery produces. It
// performs no writes; Keeper.RecvPacket applies PacketResult and
// emits the ReceivePacket event after this returns successfully.
func RecvPacket(reader exported.ChannelReader, msg channeltypes.MsgRecvPacket) (channeltypes.PacketResult, error) {
	packet := msg.Packet

	channel, found := reader.GetChannel(packet.DestinationPort, packet.DestinationChannel)
	if !found {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrChannelNotFound,
			"port %s channel %s", packet.DestinationPort, packet.DestinationChannel)
	}
	if !channel.IsOpen() {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrInvalidChannelState,
			"channel port %s channel %s is not OPEN", packet.DestinationPort, packet.DestinationChannel)
	}
	if channel.GetCounterpartyPortID() != packet.SourcePort || channel.GetCounterpartyChannelID() != packet.SourceChannel {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrInvalidPacketCounterparty,
			"expected counterparty port %s channel %s, got %s/%s",
			channel.GetCounterpartyPortID(), channel.GetCounterpartyChannelID(), packet.SourcePort, packet.SourceChannel)
	}

	hops := channel.GetConnectionHops()
	if len(hops) == 0 {
		return channeltypes.PacketResult{}, errorsmod.Wrap(channeltypes.ErrChannelNotFound, "channel has no connection hops")
	}
	connectionID := hops[0]
	connection, found := reader.GetConnection(connectionID)
	if !found {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrConnectionNotOpen, "connection %s not found", connectionID)
	}
	if !connection.IsOpen() {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrConnectionNotOpen, "connection %s", connectionID)
	}

	latestHeight := reader.HostHeight()
	if !packet.TimeoutHeight.IsZero() && latestHeight.GTE(packet.TimeoutHeight) {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrPacketTimeoutHeight,
			"latest height %s is past the packet's %s timeout height", latestHeight, packet.TimeoutHeight)
	}
	if packet.TimeoutTimestamp != 0 {
		latestTimestamp := uint64(reader.HostTimestamp().UnixNano())
		if latestTimestamp >= packet.TimeoutTimestamp {
			return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrPacketTimeoutTimestamp,
				"latest timestamp %d is past the packet's %d timeout timestamp", latestTimestamp, packet.TimeoutTimestamp)
		}
	}

	commitment := reader.PacketCommitmentBytes(packet.Data, packet.TimeoutHeight, packet.TimeoutTimestamp)
	delayBlocks := reader.BlockDelay(connection.GetDelayPeriod())
	if err := reader.VerifyPacketCommitment(
		connection.GetClientID(), msg.ProofHeight,
		uint64(connection.GetDelayPeriod()), delayBlocks,
		connection.GetCounterpartyPrefix(),
		msg.ProofCommitment, packet.SourcePort, packet.SourceChannel, packet.Sequence, commitment,
	); err != nil {
		return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrPacketVerificationFailed,
			"packet commitment verification failed for sequence %d: %s", packet.Sequence, err)
	}

	if channel.GetOrdering() == channeltypes.ORDERED.String() {
		nextSeqRecv, found := reader.GetNextSequenceRecv(packet.DestinationPort, packet.DestinationChannel)
		if !found {
			return channeltypes.PacketResult{}, errorsmod.Wrapf(channeltypes.ErrInvalidPacketSequence,
				"next sequence receive not found for port %s channel %s", packet.DestinationPort, packet.DestinationChannel)
		}
		return channeltypes.NextSequenceRecvResult(packet.DestinationPort, packet.DestinationChannel, packet.Sequence, nextSeqRecv)
	}

	receiptFound := reader.HasPacketReceipt(packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	return channeltypes.UnorderedRecvResult(packet.DestinationPort, packet.DestinationChannel, packet.Sequence, receiptFound), nil
}
