package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
	tmtypes "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/types"
)

func TestVerifyMembershipGuardClauses(t *testing.T) {
	height := clienttypes.NewHeight(1, 10)
	reader := newFakeClientReader()
	reader.hostHeight = clienttypes.NewHeight(1, 20)
	reader.hostTime = time.Unix(2000, 0)

	path := commitmenttypes.NewMerklePath("ibc", "clients/07-tendermint-0/clientState")

	t.Run("frozen client rejects before checking the proof", func(t *testing.T) {
		frozen := defaultClientState(t).UpdateStateOnMisbehaviour()
		err := frozen.VerifyMembership(reader, "07-tendermint-0", height, 0, 0, []byte("proof"), path, []byte("value"))
		require.ErrorContains(t, err, "frozen")
	})

	t.Run("height above LatestHeight is rejected", func(t *testing.T) {
		cs := defaultClientState(t)
		err := cs.VerifyMembership(reader, "07-tendermint-0", clienttypes.NewHeight(1, 1000), 0, 0, []byte("proof"), path, []byte("value"))
		require.Error(t, err)
	})

	t.Run("missing consensus state at height errors", func(t *testing.T) {
		cs := defaultClientState(t)
		err := cs.VerifyMembership(reader, "07-tendermint-0", height, 0, 0, []byte("proof"), path, []byte("value"))
		require.Error(t, err)
	})

	t.Run("missing processed time/height metadata errors", func(t *testing.T) {
		cs := defaultClientState(t)
		existing := tmtypes.NewConsensusState(time.Unix(1000, 0), commitmenttypes.NewMerkleRoot([]byte("root")), []byte("nv"))
		reader.set(height, &existing)

		err := cs.VerifyMembership(reader, "07-tendermint-0", height, 0, 0, []byte("proof"), path, []byte("value"))
		require.Error(t, err)
	})
}

func TestVerifyNonMembershipGuardClauses(t *testing.T) {
	height := clienttypes.NewHeight(1, 10)
	reader := newFakeClientReader()
	reader.hostHeight = clienttypes.NewHeight(1, 20)
	reader.hostTime = time.Unix(2000, 0)

	path := commitmenttypes.NewMerklePath("ibc", "commitments/ports/transfer/channels/channel-0/sequences/1")

	frozen := defaultClientState(t).UpdateStateOnMisbehaviour()
	err := frozen.VerifyNonMembership(reader, "07-tendermint-0", height, 0, 0, []byte("proof"), path)
	require.ErrorContains(t, err, "frozen")
}

func TestEightVerifyWrappersRejectFrozenClient(t *testing.T) {
	// These wrappers only differ in the host.*Path they build before
	// delegating to VerifyMembership/VerifyNonMembership; a frozen
	// client surfaces that delegation without requiring a real proof.
	cs := defaultClientState(t).UpdateStateOnMisbehaviour()
	reader := newFakeClientReader()
	prefix := commitmenttypes.NewMerklePrefix([]byte("ibc"))
	height := clienttypes.NewHeight(1, 10)

	testCases := []struct {
		name string
		call func() error
	}{
		{"VerifyClientState", func() error {
			return cs.VerifyClientState(reader, "07-tendermint-0", height, prefix, "07-tendermint-1", []byte("p"), []byte("v"))
		}},
		{"VerifyClientConsensusState", func() error {
			return cs.VerifyClientConsensusState(reader, "07-tendermint-0", height, prefix, "07-tendermint-1", height, []byte("p"), []byte("v"))
		}},
		{"VerifyConnectionState", func() error {
			return cs.VerifyConnectionState(reader, "07-tendermint-0", height, prefix, []byte("p"), "connection-0", []byte("v"))
		}},
		{"VerifyChannelState", func() error {
			return cs.VerifyChannelState(reader, "07-tendermint-0", height, prefix, []byte("p"), "transfer", "channel-0", []byte("v"))
		}},
		{"VerifyPacketCommitment", func() error {
			return cs.VerifyPacketCommitment(reader, "07-tendermint-0", height, 0, 0, prefix, []byte("p"), "transfer", "channel-0", 1, []byte("v"))
		}},
		{"VerifyPacketAcknowledgement", func() error {
			return cs.VerifyPacketAcknowledgement(reader, "07-tendermint-0", height, 0, 0, prefix, []byte("p"), "transfer", "channel-0", 1, []byte("v"))
		}},
		{"VerifyNextSequenceRecv", func() error {
			return cs.VerifyNextSequenceRecv(reader, "07-tendermint-0", height, 0, 0, prefix, []byte("p"), "transfer", "channel-0", 1)
		}},
		{"VerifyPacketReceiptAbsence", func() error {
			return cs.VerifyPacketReceiptAbsence(reader, "07-tendermint-0", height, 0, 0, prefix, []byte("p"), "transfer", "channel-0", 1)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorContains(t, tc.call(), "frozen")
		})
	}
}
