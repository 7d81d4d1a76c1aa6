// Package types holds the ICS-04 channel/packet data model: channel
// ends, packets and the events recv_packet emits, grounded on
// ibc-go's modules/core/04-channel/types package and on
// ics04_channel/handler/recv_packet.rs's field access patterns.
package types

// State is the state of a channel end.
type State int32

const (
	UNINITIALIZED State = iota
	INIT
	TRYOPEN
	OPEN
	CLOSED
)

// String returns a human-readable channel state name.
func (s State) String() string {
	switch s {
	case INIT:
		return "INIT"
	case TRYOPEN:
		return "TRYOPEN"
	case OPEN:
		return "OPEN"
	case CLOSED:
		return "CLOSED"
	default:
		return "UNINITIALIZED"
	}
}

// Order is the ordering guarantee of a channel: packets delivered in
// the order sent, or in any order.
type Order int32

const (
	NONE Order = iota
	UNORDERED
	ORDERED
)

// String returns a human-readable ordering name.
func (o Order) String() string {
	switch o {
	case UNORDERED:
		return "ORDER_UNORDERED"
	case ORDERED:
		return "ORDER_ORDERED"
	default:
		return "ORDER_NONE"
	}
}

// Counterparty holds the counterparty chain's port and channel
// identifiers for a channel end.
type Counterparty struct {
	PortId    string `protobuf:"bytes,1,opt,name=port_id,json=portId,proto3"`
	ChannelId string `protobuf:"bytes,2,opt,name=channel_id,json=channelId,proto3"`
}

// ChannelEnd defines a stateful object on a chain connected to
// another separate one via a channel, encapsulating the ICS-04
// channel handshake state.
type ChannelEnd struct {
	State          State        `protobuf:"varint,1,opt,name=state,proto3,enum=State"`
	Ordering       Order        `protobuf:"varint,2,opt,name=ordering,proto3,enum=Order"`
	Counterparty   Counterparty `protobuf:"bytes,3,opt,name=counterparty,proto3"`
	ConnectionHops []string     `protobuf:"bytes,4,rep,name=connection_hops,json=connectionHops,proto3"`
	Version        string       `protobuf:"bytes,5,opt,name=version,proto3"`
}

// NewChannel constructs a new ChannelEnd.
func NewChannel(state State, ordering Order, counterparty Counterparty, hops []string, version string) ChannelEnd {
	return ChannelEnd{State: state, Ordering: ordering, Counterparty: counterparty, ConnectionHops: hops, Version: version}
}

// IsOpen returns true if the channel is in the OPEN state.
func (c ChannelEnd) IsOpen() bool { return c.State == OPEN }

// GetOrdering returns the channel's ordering as a string, matching the
// exported.ChannelEndI contract.
func (c ChannelEnd) GetOrdering() string { return c.Ordering.String() }

// GetCounterpartyPortID returns the counterparty port identifier.
func (c ChannelEnd) GetCounterpartyPortID() string { return c.Counterparty.PortId }

// GetCounterpartyChannelID returns the counterparty channel identifier.
func (c ChannelEnd) GetCounterpartyChannelID() string { return c.Counterparty.ChannelId }

// GetConnectionHops returns the connection identifiers the channel is
// built upon, in order.
func (c ChannelEnd) GetConnectionHops() []string { return c.ConnectionHops }
