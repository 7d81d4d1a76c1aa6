package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
	channeltypes "github.com/ibcx-labs/tm-lightclient/modules/core/04-channel/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/04-channel/keeper"
	connectiontypes "github.com/ibcx-labs/tm-lightclient/modules/core/03-connection/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

const (
	testPortID    = "transfer"
	testChannelID = "channel-0"
	testClientID  = "07-tendermint-0"
	testConnID    = "connection-0"
)

// fakeChannelReader is a lightweight in-memory exported.ChannelReader,
// the Go re-expression of the Rust MockContext test idiom.
type fakeChannelReader struct {
	channel       channeltypes.ChannelEnd
	connection    connectiontypes.ConnectionEnd
	nextSeqRecv   uint64
	hasNextSeq    bool
	receipts      map[uint64]bool
	hostHeight    clienttypes.Height
	hostTimestamp time.Time
	verifyErr     error
}

var _ exported.ChannelReader = (*fakeChannelReader)(nil)

func (f *fakeChannelReader) GetClientState(string) (exported.ClientState, bool) { return nil, false }
func (f *fakeChannelReader) GetConsensusState(string, exported.Height) (exported.ConsensusState, bool) {
	return nil, false
}
func (f *fakeChannelReader) GetNextConsensusState(string, exported.Height) (exported.ConsensusState, bool) {
	return nil, false
}
func (f *fakeChannelReader) GetPreviousConsensusState(string, exported.Height) (exported.ConsensusState, bool) {
	return nil, false
}
func (f *fakeChannelReader) HostTimestamp() time.Time     { return f.hostTimestamp }
func (f *fakeChannelReader) HostHeight() exported.Height  { return f.hostHeight }
func (f *fakeChannelReader) GetClientUpdateTimeAndHeight(string, exported.Height) (time.Time, exported.Height, bool) {
	return time.Time{}, nil, false
}
func (f *fakeChannelReader) GetChannel(portID, channelID string) (exported.ChannelEndI, bool) {
	if portID != testPortID || channelID != testChannelID {
		return nil, false
	}
	return f.channel, true
}
func (f *fakeChannelReader) GetConnection(connectionID string) (exported.ConnectionEndI, bool) {
	if connectionID != testConnID {
		return nil, false
	}
	return f.connection, true
}
func (f *fakeChannelReader) GetNextSequenceRecv(string, string) (uint64, bool) {
	return f.nextSeqRecv, f.hasNextSeq
}
func (f *fakeChannelReader) HasPacketReceipt(_, _ string, sequence uint64) bool {
	return f.receipts[sequence]
}
func (f *fakeChannelReader) PacketCommitmentBytes(data []byte, timeoutHeight exported.Height, timeoutTimestamp uint64) []byte {
	h := timeoutHeight.(clienttypes.Height)
	return channeltypes.CommitPacket(data, h, timeoutTimestamp)
}
func (f *fakeChannelReader) BlockDelay(time.Duration) uint64 { return 0 }
func (f *fakeChannelReader) VerifyPacketCommitment(
	string, exported.Height, uint64, uint64, commitmenttypes.MerklePrefix, []byte, string, string, uint64, []byte,
) error {
	return f.verifyErr
}

func newFakeReader() *fakeChannelReader {
	return &fakeChannelReader{
		channel: channeltypes.NewChannel(
			channeltypes.OPEN, channeltypes.UNORDERED,
			channeltypes.Counterparty{PortId: "transfer", ChannelId: "channel-1"},
			[]string{testConnID}, "ics20-1",
		),
		connection: connectiontypes.ConnectionEnd{
			ClientId: testClientID,
			State:    connectiontypes.OPEN,
			Counterparty: connectiontypes.Counterparty{
				Prefix: connectiontypes.MerklePrefix{KeyPrefix: []byte("ibc")},
			},
		},
		receipts:      map[uint64]bool{},
		hostHeight:    clienttypes.NewHeight(0, 100),
		hostTimestamp: time.Unix(0, 1000),
	}
}

func newTestPacket(sequence uint64) channeltypes.Packet {
	return channeltypes.Packet{
		Sequence:           sequence,
		SourcePort:         "transfer",
		SourceChannel:      "channel-1",
		DestinationPort:    testPortID,
		DestinationChannel: testChannelID,
		Data:               []byte("data"),
		TimeoutHeight:      clienttypes.NewHeight(0, 1000),
		TimeoutTimestamp:   0,
	}
}

func TestRecvPacketUnordered(t *testing.T) {
	testCases := []struct {
		name     string
		malleate func(*fakeChannelReader)
		packet   channeltypes.Packet
		expPass  bool
		expNoOp  bool
	}{
		{
			name:     "success: new receipt recorded",
			malleate: func(r *fakeChannelReader) {},
			packet:   newTestPacket(1),
			expPass:  true,
		},
		{
			name: "success: replay is a no-op",
			malleate: func(r *fakeChannelReader) {
				r.receipts[1] = true
			},
			packet:  newTestPacket(1),
			expPass: true,
			expNoOp: true,
		},
		{
			name:     "failure: channel not found",
			malleate: func(r *fakeChannelReader) {},
			packet: func() channeltypes.Packet {
				p := newTestPacket(1)
				p.DestinationChannel = "channel-99"
				return p
			}(),
			expPass: false,
		},
		{
			name: "failure: channel not open",
			malleate: func(r *fakeChannelReader) {
				r.channel.State = channeltypes.CLOSED
			},
			packet:  newTestPacket(1),
			expPass: false,
		},
		{
			name: "failure: counterparty mismatch",
			malleate: func(r *fakeChannelReader) {
				r.channel.Counterparty.ChannelId = "channel-99"
			},
			packet:  newTestPacket(1),
			expPass: false,
		},
		{
			name: "failure: connection not open",
			malleate: func(r *fakeChannelReader) {
				r.connection.State = connectiontypes.INIT
			},
			packet:  newTestPacket(1),
			expPass: false,
		},
		{
			name:     "failure: packet height timeout has passed",
			malleate: func(r *fakeChannelReader) {},
			packet: func() channeltypes.Packet {
				p := newTestPacket(1)
				p.TimeoutHeight = clienttypes.NewHeight(0, 50)
				return p
			}(),
			expPass: false,
		},
		{
			name:     "failure: packet timestamp timeout has passed",
			malleate: func(r *fakeChannelReader) {},
			packet: func() channeltypes.Packet {
				p := newTestPacket(1)
				p.TimeoutHeight = clienttypes.ZeroHeight()
				p.TimeoutTimestamp = 500
				return p
			}(),
			expPass: false,
		},
		{
			name: "failure: proof verification fails",
			malleate: func(r *fakeChannelReader) {
				r.verifyErr = channeltypes.ErrInvalidPacketCommitment
			},
			packet:  newTestPacket(1),
			expPass: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := newFakeReader()
			tc.malleate(reader)

			msg := channeltypes.MsgRecvPacket{
				Packet:          tc.packet,
				ProofCommitment: []byte("proof"),
				ProofHeight:     clienttypes.NewHeight(0, 10),
				Signer:          "relayer",
			}

			result, err := keeper.RecvPacket(reader, msg)
			if tc.expPass {
				require.NoError(t, err)
				require.Equal(t, tc.expNoOp, result.NoOp)
				if !tc.expNoOp {
					require.Equal(t, channeltypes.Receipt, result.Receipt)
					require.Equal(t, tc.packet.Sequence, result.Sequence)
				}
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestRecvPacketOrdered(t *testing.T) {
	testCases := []struct {
		name        string
		nextSeqRecv uint64
		sequence    uint64
		expPass     bool
		expNoOp     bool
		expNext     uint64
	}{
		{"success: matching sequence advances next_seq_recv", 5, 5, true, false, 6},
		{"success: stale sequence is a no-op", 5, 3, true, true, 0},
		{"failure: sequence ahead of next_seq_recv is invalid", 5, 7, false, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := newFakeReader()
			reader.channel.Ordering = channeltypes.ORDERED
			reader.nextSeqRecv = tc.nextSeqRecv
			reader.hasNextSeq = true

			msg := channeltypes.MsgRecvPacket{
				Packet:          newTestPacket(tc.sequence),
				ProofCommitment: []byte("proof"),
				ProofHeight:     clienttypes.NewHeight(0, 10),
				Signer:          "relayer",
			}

			result, err := keeper.RecvPacket(reader, msg)
			if tc.expPass {
				require.NoError(t, err)
				require.Equal(t, tc.expNoOp, result.NoOp)
				if !tc.expNoOp {
					require.Equal(t, tc.expNext, result.NextSequenceRecv)
				}
			} else {
				require.Error(t, err)
			}
		})
	}
}
