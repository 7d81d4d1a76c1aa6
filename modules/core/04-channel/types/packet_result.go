package types

import errorsmod "cosmossdk.io/errors"

// Receipt marks that a packet has been received on an unordered
// channel, mirroring ics04_channel::packet::Receipt in the original
// implementation (a single inhabited variant; its presence in the
// store, not its value, is what a non-membership proof later checks).
const Receipt = "Receipt"

// PacketResult is the sequencing outcome RecvPacket computes from a
// channel's ordering and the packet's sequence number, grounded on
// ics04_channel::handler::recv_packet::RecvPacketResult. It carries no
// store handle: applying it is the caller's job.
type PacketResult struct {
	// NoOp is true when the packet has already been processed and no
	// state should change (a replay).
	NoOp bool

	// Ordered is true for an ORDERED channel outcome, false for
	// UNORDERED.
	Ordered bool

	PortId    string
	ChannelId string

	// NextSequenceRecv is the value to store for an ORDERED channel
	// outcome (next_seq_recv.increment() in the original).
	NextSequenceRecv uint64

	// Sequence and Receipt apply to an UNORDERED channel outcome.
	Sequence uint64
	Receipt  string
}

// NextSequenceRecvResult computes the sequencing outcome for an
// ORDERED channel, following recv_packet.rs's branch exactly: a
// sequence ahead of next_seq_recv is invalid, a sequence behind it is
// a no-op replay, and a matching sequence advances next_seq_recv by
// one.
func NextSequenceRecvResult(portID, channelID string, sequence, nextSeqRecv uint64) (PacketResult, error) {
	if sequence > nextSeqRecv {
		return PacketResult{}, errorsmod.Wrapf(ErrInvalidPacketSequence, "got %d, expected <= %d", sequence, nextSeqRecv)
	}
	if sequence < nextSeqRecv {
		return PacketResult{NoOp: true, Ordered: true}, nil
	}
	return PacketResult{
		Ordered:          true,
		PortId:           portID,
		ChannelId:        channelID,
		NextSequenceRecv: nextSeqRecv + 1,
	}, nil
}

// UnorderedRecvResult computes the sequencing outcome for an
// UNORDERED channel: a previously stored receipt means the packet was
// already delivered (no-op); otherwise a new receipt is recorded.
func UnorderedRecvResult(portID, channelID string, sequence uint64, receiptFound bool) PacketResult {
	if receiptFound {
		return PacketResult{NoOp: true}
	}
	return PacketResult{
		PortId:    portID,
		ChannelId: channelID,
		Sequence:  sequence,
		Receipt:   Receipt,
	}
}
