package types

// Event types and attribute keys emitted by the channel keeper,
// matching the plain sdk.Event attribute convention every ibc-go
// keeper uses instead of a typed proto event.
const (
	EventTypeReceivePacket = "recv_packet"

	AttributeKeyData             = "packet_data"
	AttributeKeyTimeoutHeight    = "packet_timeout_height"
	AttributeKeyTimeoutTimestamp = "packet_timeout_timestamp"
	AttributeKeySequence         = "packet_sequence"
	AttributeKeySrcPort          = "packet_src_port"
	AttributeKeySrcChannel       = "packet_src_channel"
	AttributeKeyDstPort          = "packet_dst_port"
	AttributeKeyDstChannel       = "packet_dst_channel"
	AttributeKeyChannelOrdering  = "packet_channel_ordering"
	AttributeKeyConnection       = "packet_connection"

	AttributeValueCategory = "ibc_channel"
)
