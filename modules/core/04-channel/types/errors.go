package types

import errorsmod "cosmossdk.io/errors"

// channel/packet error taxonomy, grounded 1:1 on the PacketError
// variants raised by ics04_channel/handler/recv_packet.rs's process
// function.
const submoduleCodespace = "channel"

var (
	ErrChannelNotFound         = errorsmod.Register(submoduleCodespace, 2, "channel not found")
	ErrInvalidChannelState     = errorsmod.Register(submoduleCodespace, 3, "invalid channel state")
	ErrInvalidPacket           = errorsmod.Register(submoduleCodespace, 4, "invalid packet")
	ErrInvalidPacketData       = errorsmod.Register(submoduleCodespace, 5, "invalid packet data")
	ErrInvalidPacketTimeout    = errorsmod.Register(submoduleCodespace, 6, "invalid packet timeout")
	ErrInvalidPacketCounterparty = errorsmod.Register(submoduleCodespace, 7, "packet source port/channel does not match channel counterparty")
	ErrConnectionNotOpen       = errorsmod.Register(submoduleCodespace, 8, "connection state is not OPEN")
	ErrPacketTimeoutHeight     = errorsmod.Register(submoduleCodespace, 9, "packet timeout height has already been reached for the given destination chain")
	ErrPacketTimeoutTimestamp  = errorsmod.Register(submoduleCodespace, 10, "packet timeout timestamp has already been reached for the given destination chain")
	ErrPacketCommitmentNotFound = errorsmod.Register(submoduleCodespace, 11, "packet commitment not found")
	ErrInvalidPacketCommitment = errorsmod.Register(submoduleCodespace, 12, "invalid packet commitment")
	ErrInvalidPacketSequence   = errorsmod.Register(submoduleCodespace, 13, "invalid packet sequence")
	ErrPacketReceived          = errorsmod.Register(submoduleCodespace, 14, "packet already received")
	ErrPacketVerificationFailed = errorsmod.Register(submoduleCodespace, 15, "packet membership verification failed")
	ErrAcknowledgementExists   = errorsmod.Register(submoduleCodespace, 16, "acknowledgement for packet already exists")
)
